package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"eventmanager/internal/domain"
)

var (
	testLogger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	testTimeout = 5 * time.Second
	errDB       = errors.New("connection refused")
)

// fakeEventRepo is an in-memory EventRepository for tests. Deletes cascade to
// the attendee repo bound to it, like ON DELETE CASCADE.
type fakeEventRepo struct {
	byID      map[int64]*domain.Event
	nextID    int64
	err       error // returned by every method when set
	attendees *fakeAttendeeRepo
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	if f.attendees != nil {
		for aid, a := range f.attendees.byID {
			if a.EventID == id {
				delete(f.attendees.byID, aid)
			}
		}
	}
	return nil
}

// fakeAttendeeRepo enforces the event reference against events, like the FK does.
type fakeAttendeeRepo struct {
	events *fakeEventRepo
	byID   map[int64]*domain.Attendee
	nextID int64
	err    error
}

func newFakeAttendeeRepo(events *fakeEventRepo) *fakeAttendeeRepo {
	f := &fakeAttendeeRepo{events: events, byID: make(map[int64]*domain.Attendee), nextID: 1}
	events.attendees = f
	return f
}

func (f *fakeAttendeeRepo) checkEvent(id int64) error {
	if _, ok := f.events.byID[id]; !ok {
		return domain.Invalid("event_id does not reference an existing event")
	}
	return nil
}

func (f *fakeAttendeeRepo) Create(ctx context.Context, a *domain.Attendee) error {
	if f.err != nil {
		return f.err
	}
	if err := f.checkEvent(a.EventID); err != nil {
		return err
	}
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAttendeeRepo) GetByID(ctx context.Context, id int64) (*domain.Attendee, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendeeRepo) List(ctx context.Context) ([]*domain.Attendee, error) {
	return f.filter(func(*domain.Attendee) bool { return true })
}

func (f *fakeAttendeeRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Attendee, error) {
	return f.filter(func(a *domain.Attendee) bool { return a.EventID == eventID })
}

func (f *fakeAttendeeRepo) filter(keep func(*domain.Attendee) bool) ([]*domain.Attendee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Attendee
	for _, a := range f.byID {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAttendeeRepo) Update(ctx context.Context, id int64, patch domain.AttendeePatch) (*domain.Attendee, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.EventID != nil {
		if err := f.checkEvent(*patch.EventID); err != nil {
			return nil, err
		}
		a.EventID = *patch.EventID
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Email != nil {
		a.Email = *patch.Email
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendeeRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	byName map[string]*domain.User
	nextID int64
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byName[u.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.byName[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeSessionRepo struct {
	expires   map[string]time.Time
	purged    int
	deleteErr error
	existsErr error
	now       func() time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{expires: make(map[string]time.Time), now: time.Now}
}

func (f *fakeSessionRepo) Create(ctx context.Context, id string, userID int64, expiresAt time.Time) error {
	f.expires[id] = expiresAt
	return nil
}

func (f *fakeSessionRepo) Exists(ctx context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	exp, ok := f.expires[id]
	return ok && exp.After(f.now()), nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.expires, id)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	f.purged++
	var n int64
	for id, exp := range f.expires {
		if !exp.After(f.now()) {
			delete(f.expires, id)
			n++
		}
	}
	return n, nil
}

// plainHasher stores "salt:password"; good enough to exercise the service flow.
type plainHasher struct{}

func (plainHasher) GenerateSalt() (string, error) { return "salt", nil }

func (plainHasher) Hash(salt, password string) (string, error) { return salt + ":" + password, nil }

func (plainHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokens encodes the session id as the token itself.
type fakeTokens struct {
	issued map[string]*domain.Session
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: make(map[string]*domain.Session)}
}

func (f *fakeTokens) Issue(s *domain.Session) (string, error) {
	cp := *s
	f.issued["tok-"+s.ID] = &cp
	return "tok-" + s.ID, nil
}

func (f *fakeTokens) Verify(token string) (*domain.Session, error) {
	s, ok := f.issued[token]
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	cp := *s
	return &cp, nil
}

type fakeEmailService struct {
	welcome       []*domain.WelcomeMessageEmailData
	confirmations []*domain.AttendeeConfirmationEmailData
	err           error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	f.welcome = append(f.welcome, data)
	return f.err
}

func (f *fakeEmailService) SendAttendeeConfirmation(ctx context.Context, data *domain.AttendeeConfirmationEmailData) error {
	f.confirmations = append(f.confirmations, data)
	return f.err
}
