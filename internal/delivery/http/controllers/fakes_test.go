package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var errStore = errors.New("pq: connection refused")

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events     []*domain.Event
	event      *domain.Event
	err        error
	lastID     int64
	lastCreate [3]string
	lastUpdate domain.EventUpdate
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeEventService) CreateEvent(ctx context.Context, name, location, date string) (*domain.Event, error) {
	f.lastCreate = [3]string{name, location, date}
	return f.event, f.err
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	f.lastID = id
	f.lastUpdate = update
	return f.event, f.err
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeAttendeeService implements domain.AttendeeService for handler tests.
type fakeAttendeeService struct {
	attendees   []*domain.Attendee
	attendee    *domain.Attendee
	err         error
	lastID      int64
	lastEventID *int64
	lastCreate  *domain.Attendee
	lastPatch   domain.AttendeePatch
}

func (f *fakeAttendeeService) ListAttendees(ctx context.Context, eventID *int64) ([]*domain.Attendee, error) {
	f.lastEventID = eventID
	return f.attendees, f.err
}

func (f *fakeAttendeeService) GetAttendee(ctx context.Context, id int64) (*domain.Attendee, error) {
	f.lastID = id
	return f.attendee, f.err
}

func (f *fakeAttendeeService) CreateAttendee(ctx context.Context, name, email string, eventID int64) (*domain.Attendee, error) {
	f.lastCreate = domain.NewAttendee(name, email, eventID)
	return f.attendee, f.err
}

func (f *fakeAttendeeService) UpdateAttendee(ctx context.Context, id int64, patch domain.AttendeePatch) (*domain.Attendee, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.attendee, f.err
}

func (f *fakeAttendeeService) DeleteAttendee(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	user        *domain.User
	session     *domain.Session
	token       string
	err         error
	logoutErr   error
	logoutToken string
	lastIsAdmin bool
}

func (f *fakeAuthService) Register(ctx context.Context, username, email, password string, isAdmin bool) (*domain.User, error) {
	f.lastIsAdmin = isAdmin
	return f.user, f.err
}

func (f *fakeAuthService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.session, nil
}

func (f *fakeAuthService) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	return f.session, f.err
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.logoutToken = token
	return f.logoutErr
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

var sampleUser = &domain.User{
	ID:        1,
	Username:  "alice",
	Email:     "alice@example.com",
	IsAdmin:   true,
	CreatedAt: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
}
