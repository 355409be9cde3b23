// file: internals/features/events/service/event_service.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"blackbear_backend/internals/datastore"
	"blackbear_backend/internals/errs"
	"blackbear_backend/internals/features/events/dto"
	"blackbear_backend/internals/features/events/model"
	helper "blackbear_backend/internals/helpers"
)

const (
	requiredMessage   = "Title, description, date, and time are required."
	badDateMessage    = "Invalid date or time format."
	dateTimeLayout    = "2006-01-02T15:04"
	dateTimeSeparator = "T"
)

type EventService struct {
	store *datastore.Store[model.EventModel]
}

func NewEventService(store *datastore.Store[model.EventModel]) *EventService {
	return &EventService{store: store}
}

// List returns every event sorted ascending by dateTime. The sort is stable,
// so events sharing an instant keep their insertion order. Storage itself
// stays unordered.
func (s *EventService) List() ([]model.EventModel, error) {
	events, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return parseInstant(events[i].DateTime).Before(parseInstant(events[j].DateTime))
	})
	return events, nil
}

func (s *EventService) Create(in dto.EventRequest) (model.EventModel, error) {
	var event model.EventModel

	if err := helper.CheckStruct(in, requiredMessage); err != nil {
		return event, err
	}
	dateTime, err := deriveDateTime(in.Date, in.Time)
	if err != nil {
		return event, errs.NewValidation(badDateMessage)
	}

	event = model.EventModel{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		DateTime:    dateTime,
		CreatedAt:   now(),
	}

	err = s.store.Update(func(events []model.EventModel) ([]model.EventModel, error) {
		return append(events, event), nil
	})
	if err != nil {
		return model.EventModel{}, err
	}
	return event, nil
}

func (s *EventService) Update(id string, in dto.EventRequest) (model.EventModel, error) {
	var updated model.EventModel

	if err := helper.CheckStruct(in, requiredMessage); err != nil {
		return updated, err
	}
	dateTime, err := deriveDateTime(in.Date, in.Time)
	if err != nil {
		return updated, errs.NewValidation(badDateMessage)
	}

	err = s.store.Update(func(events []model.EventModel) ([]model.EventModel, error) {
		for i := range events {
			if events[i].ID != id {
				continue
			}
			events[i].Title = in.Title
			events[i].Description = in.Description
			events[i].Date = in.Date
			events[i].Time = in.Time
			events[i].DateTime = dateTime
			events[i].UpdatedAt = now()
			updated = events[i]
			return events, nil
		}
		return nil, errs.NotFound("Event")
	})
	if err != nil {
		return model.EventModel{}, err
	}
	return updated, nil
}

// Delete removes the event and returns it.
func (s *EventService) Delete(id string) (model.EventModel, error) {
	var removed model.EventModel

	err := s.store.Update(func(events []model.EventModel) ([]model.EventModel, error) {
		for i := range events {
			if events[i].ID != id {
				continue
			}
			removed = events[i]
			return append(events[:i], events[i+1:]...), nil
		}
		return nil, errs.NotFound("Event")
	})
	if err != nil {
		return model.EventModel{}, err
	}
	return removed, nil
}

// deriveDateTime combines the date and time-of-day into one instant. The
// pair is interpreted in the server's local zone and stored canonically as
// UTC RFC 3339. Impossible calendar dates fail here.
func deriveDateTime(date, timeOfDay string) (string, error) {
	t, err := time.ParseInLocation(dateTimeLayout, date+dateTimeSeparator+timeOfDay, time.Local)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

func parseInstant(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
