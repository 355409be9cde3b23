// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/features/admin/service"
)

// HeaderName carries the opaque admin bearer token.
const HeaderName = "X-Admin-Token"

// RequireAdmin rejects requests whose token was not issued by a successful
// login. The token is kept in locals so logout can revoke it.
func RequireAdmin(sessions *service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderName)
		if err := sessions.Authorize(token); err != nil {
			return err
		}
		c.Locals("admin_token", token)
		return c.Next()
	}
}
