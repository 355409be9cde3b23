// file: internals/features/gallery/route/gallery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/features/gallery/controller"
)

func GalleryRoutes(api fiber.Router, ctrl *controller.GalleryController, requireAdmin fiber.Handler) {
	gallery := api.Group("/gallery")

	gallery.Get("/", ctrl.GetAll)
	gallery.Post("/", requireAdmin, ctrl.Create)
	gallery.Delete("/:id", requireAdmin, ctrl.Delete)
}
