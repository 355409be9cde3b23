// file: internals/features/performers/route/performer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/features/performers/controller"
)

// PerformerRoutes mounts the performers API. Listing and submitting an
// enquiry are public; only deletion is admin work.
func PerformerRoutes(api fiber.Router, ctrl *controller.PerformerController, requireAdmin fiber.Handler) {
	performers := api.Group("/performers")

	performers.Get("/", ctrl.GetAll)
	performers.Post("/", ctrl.Create)
	performers.Delete("/:id", requireAdmin, ctrl.Delete)
}
