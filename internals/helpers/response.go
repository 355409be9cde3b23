// file: internals/helpers/response.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/errs"
)

// Error sends a structured error body.
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// ErrorWithDetails additionally carries per-field validation errors.
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
		"errors":  details,
	})
}

// ErrorHandler is the single place that maps domain errors to HTTP status
// codes. Controllers return errors; nothing writes an ad-hoc status inline.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		if len(ve.Fields) > 0 {
			return ErrorWithDetails(c, fiber.StatusBadRequest, ve.Message, ve.Fields)
		}
		return Error(c, fiber.StatusBadRequest, ve.Message)
	}
	if errs.IsUnauthorized(err) {
		return Error(c, fiber.StatusUnauthorized, err.Error())
	}
	if errs.IsNotFound(err) {
		return Error(c, fiber.StatusNotFound, err.Error())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		message := fe.Message
		if fe.Code == fiber.StatusNotFound {
			message = "Not found."
		}
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
			message = "Unexpected error occurred."
		}
		return Error(c, fe.Code, message)
	}

	// Detail stays in the server log, the client gets a generic body.
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return Error(c, fiber.StatusInternalServerError, "Unexpected error occurred.")
}
