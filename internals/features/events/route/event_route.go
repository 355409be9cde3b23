// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/features/events/controller"
)

// EventRoutes mounts the events API. Reads are public, mutations go through
// the admin guard.
func EventRoutes(api fiber.Router, ctrl *controller.EventController, requireAdmin fiber.Handler) {
	events := api.Group("/events")

	events.Get("/", ctrl.GetAll)
	events.Post("/", requireAdmin, ctrl.Create)
	events.Put("/:id", requireAdmin, ctrl.Update)
	events.Delete("/:id", requireAdmin, ctrl.Delete)
}
