// file: internals/features/performers/service/performer_service.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"blackbear_backend/internals/datastore"
	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/performers/dto"
	"blackbear_backend/internals/features/performers/model"
	helper "blackbear_backend/internals/helpers"
)

const requiredMessage = "Name, a valid email, and message are required."

type PerformerService struct {
	store *datastore.Store[model.PerformerEnquiryModel]
}

func NewPerformerService(store *datastore.Store[model.PerformerEnquiryModel]) *PerformerService {
	return &PerformerService{store: store}
}

// List returns enquiries in insertion order.
func (s *PerformerService) List() ([]model.PerformerEnquiryModel, error) {
	return s.store.Read()
}

func (s *PerformerService) Create(in dto.PerformerRequest) (model.PerformerEnquiryModel, error) {
	if err := helper.CheckStruct(in, requiredMessage); err != nil {
		return model.PerformerEnquiryModel{}, err
	}

	enquiry := model.PerformerEnquiryModel{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Message:      strings.TrimSpace(in.Message),
		ActType:      strings.TrimSpace(in.ActType),
		Availability: strings.TrimSpace(in.Availability),
		PromoLink:    strings.TrimSpace(in.PromoLink),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	err := s.store.Update(func(items []model.PerformerEnquiryModel) ([]model.PerformerEnquiryModel, error) {
		return append(items, enquiry), nil
	})
	if err != nil {
		return model.PerformerEnquiryModel{}, err
	}
	return enquiry, nil
}

func (s *PerformerService) Delete(id string) (model.PerformerEnquiryModel, error) {
	var removed model.PerformerEnquiryModel

	err := s.store.Update(func(items []model.PerformerEnquiryModel) ([]model.PerformerEnquiryModel, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			removed = items[i]
			return append(items[:i], items[i+1:]...), nil
		}
		return nil, errs.NotFound("Enquiry")
	})
	if err != nil {
		return model.PerformerEnquiryModel{}, err
	}
	return removed, nil
}
