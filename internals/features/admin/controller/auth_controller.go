// file: internals/features/admin/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/admin/service"
)

type AuthController struct {
	sessions *service.SessionService
}

func NewAuthController(sessions *service.SessionService) *AuthController {
	return &AuthController{sessions: sessions}
}

// Login exchanges the shared admin password for a bearer token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var in struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errs.Unauthorized("Invalid password.")
	}

	token, err := ctrl.sessions.Login(in.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// Logout revokes the token that authenticated this request.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	if token, ok := c.Locals("admin_token").(string); ok {
		ctrl.sessions.Logout(token)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
