// file: internals/features/performers/dto/performer_dto.go
package dto

type PerformerRequest struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	Message      string `json:"message" form:"message" validate:"required"`
	ActType      string `json:"actType" form:"actType"`
	Availability string `json:"availability" form:"availability"`
	PromoLink    string `json:"promoLink" form:"promoLink"`
}
