// file: internals/features/performers/service/performer_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackbear_backend/internals/datastore"
	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/performers/dto"
	"blackbear_backend/internals/features/performers/model"
)

func newService(t *testing.T) *PerformerService {
	t.Helper()
	return NewPerformerService(datastore.New[model.PerformerEnquiryModel](t.TempDir(), "performers.json"))
}

func validRequest() dto.PerformerRequest {
	return dto.PerformerRequest{
		Name:    "The Night Owls",
		Email:   "owls@example.com",
		Message: "Four piece soul band, available most weekends.",
		ActType: "Band",
	}
}

func TestCreateStoresEnquiry(t *testing.T) {
	s := newService(t)

	created, err := s.Create(validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "The Night Owls", created.Name)
	assert.Equal(t, "Band", created.ActType)
	assert.NotEmpty(t, created.CreatedAt)

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCreateOptionalFieldsDefaultEmpty(t *testing.T) {
	s := newService(t)

	in := validRequest()
	in.ActType = ""
	in.Availability = ""
	in.PromoLink = ""
	created, err := s.Create(in)
	require.NoError(t, err)
	assert.Empty(t, created.ActType)
	assert.Empty(t, created.Availability)
	assert.Empty(t, created.PromoLink)
}

func TestCreateMissingRequiredFields(t *testing.T) {
	s := newService(t)

	in := validRequest()
	in.Message = ""
	_, err := s.Create(in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "message")
}

func TestCreateRejectsMalformedEmail(t *testing.T) {
	s := newService(t)

	in := validRequest()
	in.Email = "not-an-email"
	_, err := s.Create(in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")

	items, lerr := s.List()
	require.NoError(t, lerr)
	assert.Empty(t, items)
}

func TestDeleteRemovesEnquiry(t *testing.T) {
	s := newService(t)
	created, err := s.Create(validRequest())
	require.NoError(t, err)

	removed, err := s.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	items, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteUnknownID(t *testing.T) {
	s := newService(t)

	_, err := s.Delete("missing")
	assert.True(t, errs.IsNotFound(err))
}
