// file: internals/features/events/dto/event_dto.go
package dto

type EventRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Date        string `json:"date" form:"date" validate:"required"`
	Time        string `json:"time" form:"time" validate:"required"`
}
