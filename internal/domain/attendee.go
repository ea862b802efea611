package domain

import "context"

// Attendee is a person registered to exactly one event.
// swagger:model Attendee
type Attendee struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID int64  `json:"event_id"`
}

// NewAttendee returns a new Attendee. ID is set by the repository on create.
func NewAttendee(name, email string, eventID int64) *Attendee {
	return &Attendee{
		Name:    name,
		Email:   email,
		EventID: eventID,
	}
}

// AttendeePatch lists the columns an update writes; nil fields are left unchanged.
type AttendeePatch struct {
	Name    *string
	Email   *string
	EventID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p AttendeePatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.EventID == nil
}

// AttendeeRepository defines storage operations for attendees.
type AttendeeRepository interface {
	Create(ctx context.Context, a *Attendee) error
	GetByID(ctx context.Context, id int64) (*Attendee, error)
	List(ctx context.Context) ([]*Attendee, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Attendee, error)
	Update(ctx context.Context, id int64, patch AttendeePatch) (*Attendee, error)
	Delete(ctx context.Context, id int64) error
}

// AttendeeService defines the business logic for attendees.
type AttendeeService interface {
	// ListAttendees returns every attendee, or only those of eventID when it is non-nil.
	// An unknown event yields an empty slice.
	ListAttendees(ctx context.Context, eventID *int64) ([]*Attendee, error)
	GetAttendee(ctx context.Context, id int64) (*Attendee, error)
	CreateAttendee(ctx context.Context, name, email string, eventID int64) (*Attendee, error)
	UpdateAttendee(ctx context.Context, id int64, patch AttendeePatch) (*Attendee, error)
	DeleteAttendee(ctx context.Context, id int64) error
}
