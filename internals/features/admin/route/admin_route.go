// file: internals/features/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/features/admin/controller"
	"blackbear_backend/internals/middlewares"
)

func AdminRoutes(api fiber.Router, ctrl *controller.AuthController, requireAdmin fiber.Handler) {
	admin := api.Group("/admin")

	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Post("/logout", requireAdmin, ctrl.Logout)
}
