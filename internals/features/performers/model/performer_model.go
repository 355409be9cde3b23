// file: internals/features/performers/model/performer_model.go
package model

// PerformerEnquiryModel is one stored booking enquiry from the public
// performers form.
type PerformerEnquiryModel struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	ActType      string `json:"actType,omitempty"`
	Availability string `json:"availability,omitempty"`
	PromoLink    string `json:"promoLink,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
