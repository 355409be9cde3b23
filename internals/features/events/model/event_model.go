// file: internals/features/events/model/event_model.go
package model

// EventModel is one stored event. DateTime is derived from Date+Time at
// write time and kept as a UTC RFC 3339 instant; CreatedAt/UpdatedAt are
// stamped by the service, never taken from the client.
type EventModel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DateTime    string `json:"dateTime"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
