package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

type SessionPG struct {
	db *pgxpool.Pool
}

func NewSessionPG(db *pgxpool.Pool) *SessionPG {
	return &SessionPG{db: db}
}

// Put replaces the user's session in one statement. user_id is the primary
// key, so the upsert closes the check-then-replace race two concurrent
// logins would otherwise hit.
func (r *SessionPG) Put(ctx context.Context, session *entity.Session) error {
	const query = `
	INSERT INTO sessions (user_id, refresh_token, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET refresh_token = EXCLUDED.refresh_token,
	    expires_at    = EXCLUDED.expires_at,
	    created_at    = now()
	RETURNING created_at
	`
	return r.db.QueryRow(ctx, query,
		session.UserID,
		session.RefreshToken,
		session.ExpiresAt,
	).Scan(&session.CreatedAt)
}

func (r *SessionPG) GetByRefreshToken(ctx context.Context, token string) (entity.Session, error) {
	const query = `
	SELECT user_id, refresh_token, expires_at, created_at
	FROM sessions
	WHERE refresh_token = $1
	LIMIT 1
	`
	var session entity.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.UserID,
		&session.RefreshToken,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return session, nil
}

func (r *SessionPG) GetByUser(ctx context.Context, userID string) (entity.Session, error) {
	const query = `
	SELECT user_id, refresh_token, expires_at, created_at
	FROM sessions
	WHERE user_id = $1
	LIMIT 1
	`
	var session entity.Session
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&session.UserID,
		&session.RefreshToken,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return session, nil
}

func (r *SessionPG) ExtendExpiry(ctx context.Context, token string, expiresAt time.Time) error {
	const query = `UPDATE sessions SET expires_at = $1 WHERE refresh_token = $2`
	result, err := r.db.Exec(ctx, query, expiresAt, token)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete is idempotent: removing a session that is already gone is fine.
func (r *SessionPG) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *SessionPG) CleanupExpired(ctx context.Context) error {
	const query = `DELETE FROM sessions WHERE expires_at < now()`
	_, err := r.db.Exec(ctx, query)
	return err
}
