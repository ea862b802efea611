package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of event dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, Invalid(fmt.Sprintf("date %q does not match format YYYY-MM-DD", s))
	}
	return NewDate(t), nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Event is a scheduled happening with a name, location, and date.
// swagger:model Event
type Event struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     Date   `json:"date" swaggertype:"string" example:"2025-03-01"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, location string, date Date) *Event {
	return &Event{
		Name:     name,
		Location: location,
		Date:     date,
	}
}

// EventPatch lists the columns an update writes; nil fields are left unchanged.
type EventPatch struct {
	Name     *string
	Location *string
	Date     *Date
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.Date == nil
}

// EventUpdate is the raw partial update accepted by the event service.
type EventUpdate struct {
	Name     *string
	Location *string
	Date     *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for events.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	// CreateEvent validates the fields and parses date as YYYY-MM-DD.
	CreateEvent(ctx context.Context, name, location, date string) (*Event, error)
	// UpdateEvent applies only the supplied fields; an empty update returns the stored event.
	UpdateEvent(ctx context.Context, id int64, update EventUpdate) (*Event, error)
	// DeleteEvent removes the event together with its attendees.
	DeleteEvent(ctx context.Context, id int64) error
}
