// file: internals/features/events/service/event_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackbear_backend/internals/datastore"
	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/events/dto"
	"blackbear_backend/internals/features/events/model"
)

func newService(t *testing.T) *EventService {
	t.Helper()
	return NewEventService(datastore.New[model.EventModel](t.TempDir(), "events.json"))
}

func validRequest() dto.EventRequest {
	return dto.EventRequest{
		Title:       "Jazz Night",
		Description: "Live quartet",
		Date:        "2025-06-01",
		Time:        "19:30",
	}
}

func TestCreateAddsExactlyOneEvent(t *testing.T) {
	s := newService(t)

	before, err := s.List()
	require.NoError(t, err)
	require.Empty(t, before)

	created, err := s.Create(validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jazz Night", created.Title)
	assert.Equal(t, "Live quartet", created.Description)
	assert.NotEmpty(t, created.CreatedAt)

	after, err := s.List()
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, created.ID, after[0].ID)
}

func TestCreateDerivesDateTime(t *testing.T) {
	s := newService(t)

	created, err := s.Create(validRequest())
	require.NoError(t, err)

	want, perr := time.ParseInLocation("2006-01-02T15:04", "2025-06-01T19:30", time.Local)
	require.NoError(t, perr)
	assert.Equal(t, want.UTC().Format(time.RFC3339), created.DateTime)
}

func TestCreateMissingFields(t *testing.T) {
	s := newService(t)

	in := validRequest()
	in.Description = ""
	_, err := s.Create(in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Title, description, date, and time are required.", ve.Message)
	assert.Contains(t, ve.Fields, "description")

	events, lerr := s.List()
	require.NoError(t, lerr)
	assert.Empty(t, events)
}

func TestCreateImpossibleCalendarDate(t *testing.T) {
	s := newService(t)

	in := validRequest()
	in.Date = "2025-02-30"
	_, err := s.Create(in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid date or time format.", ve.Message)

	events, lerr := s.List()
	require.NoError(t, lerr)
	assert.Empty(t, events)
}

func TestListSortsByDateTimeAscending(t *testing.T) {
	s := newService(t)

	later := validRequest()
	later.Title = "Later"
	later.Date = "2025-07-01"
	_, err := s.Create(later)
	require.NoError(t, err)

	earlier := validRequest()
	earlier.Title = "Earlier"
	_, err = s.Create(earlier)
	require.NoError(t, err)

	events, err := s.List()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Earlier", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	s := newService(t)
	created, err := s.Create(validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.Title = "Blues Night"
	in.Time = "21:00"
	updated, err := s.Update(created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Blues Night", updated.Title)
	assert.Equal(t, "21:00", updated.Time)
	assert.NotEmpty(t, updated.UpdatedAt)
	assert.NotEqual(t, created.DateTime, updated.DateTime)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newService(t)

	_, err := s.Update("missing", validRequest())
	assert.True(t, errs.IsNotFound(err))
}

func TestUpdateRevalidatesFields(t *testing.T) {
	s := newService(t)
	created, err := s.Create(validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.Date = "2025-02-30"
	_, err = s.Update(created.ID, in)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)

	events, lerr := s.List()
	require.NoError(t, lerr)
	assert.Equal(t, created.DateTime, events[0].DateTime)
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	s := newService(t)
	created, err := s.Create(validRequest())
	require.NoError(t, err)

	removed, err := s.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	events, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := newService(t)
	_, err := s.Create(validRequest())
	require.NoError(t, err)

	_, err = s.Delete("missing")
	assert.True(t, errs.IsNotFound(err))

	events, err := s.List()
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
