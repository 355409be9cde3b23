// file: internals/features/events/controller/event_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/events/dto"
	"blackbear_backend/internals/features/events/service"
)

type EventController struct {
	service *service.EventService
}

func NewEventController(s *service.EventService) *EventController {
	return &EventController{service: s}
}

// GetAll returns every event sorted by dateTime ascending.
func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	events, err := ctrl.service.List()
	if err != nil {
		return err
	}
	return c.JSON(events)
}

func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var in dto.EventRequest
	if err := c.BodyParser(&in); err != nil {
		return errs.NewValidation("Invalid request body.")
	}

	event, err := ctrl.service.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (ctrl *EventController) Update(c *fiber.Ctx) error {
	var in dto.EventRequest
	if err := c.BodyParser(&in); err != nil {
		return errs.NewValidation("Invalid request body.")
	}

	event, err := ctrl.service.Update(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(event)
}

// Delete responds with the removed record.
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	event, err := ctrl.service.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(event)
}
