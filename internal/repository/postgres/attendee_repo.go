package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventmanager/internal/domain"
)

const attendeeColumns = `id, name, email, event_id`

var errUnknownEvent = domain.Invalid("event_id does not reference an existing event")

type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

func scanAttendee(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.EventID); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (name, email, event_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.Name, a.Email, a.EventID).Scan(&a.ID)
	if isForeignKeyViolation(err) {
		return errUnknownEvent
	}
	return err
}

func (r *attendeeRepository) GetByID(ctx context.Context, id int64) (*domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE id = $1`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) List(ctx context.Context) ([]*domain.Attendee, error) {
	return r.list(ctx, `SELECT `+attendeeColumns+` FROM attendees ORDER BY id`)
}

func (r *attendeeRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Attendee, error) {
	return r.list(ctx, `SELECT `+attendeeColumns+` FROM attendees WHERE event_id = $1 ORDER BY id`, eventID)
}

func (r *attendeeRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Attendee, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) Update(ctx context.Context, id int64, patch domain.AttendeePatch) (*domain.Attendee, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	if patch.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *patch.Name)
		n++
	}
	if patch.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", n))
		args = append(args, *patch.Email)
		n++
	}
	if patch.EventID != nil {
		setClauses = append(setClauses, fmt.Sprintf("event_id = $%d", n))
		args = append(args, *patch.EventID)
		n++
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE attendees SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, attendeeColumns)
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, errUnknownEvent
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM attendees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
