package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventmanager/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository returns a domain.SessionRepository implemented with Postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, id string, userID int64, expiresAt time.Time) error {
	query := `
		INSERT INTO user_sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, id, userID, expiresAt)
	return err
}

func (r *sessionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var found string
	query := `
		SELECT id FROM user_sessions
		WHERE id = $1 AND expires_at > NOW()
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM user_sessions WHERE id = $1`, id)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM user_sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
