// file: internals/features/performers/controller/performer_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/performers/dto"
	"blackbear_backend/internals/features/performers/service"
)

type PerformerController struct {
	service *service.PerformerService
}

func NewPerformerController(s *service.PerformerService) *PerformerController {
	return &PerformerController{service: s}
}

func (ctrl *PerformerController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.service.List()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create takes an enquiry from the public performers form.
func (ctrl *PerformerController) Create(c *fiber.Ctx) error {
	var in dto.PerformerRequest
	if err := c.BodyParser(&in); err != nil {
		return errs.NewValidation("Invalid request body.")
	}

	enquiry, err := ctrl.service.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(enquiry)
}

func (ctrl *PerformerController) Delete(c *fiber.Ctx) error {
	enquiry, err := ctrl.service.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(enquiry)
}
