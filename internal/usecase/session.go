package usecase

import (
	"context"
	"time"

	"rentbaaz/internal/entity"
)

// SessionRepository holds at most one session row per user. Put replaces any
// previous row for the user in a single upsert, so two interleaved logins can
// never leave two valid refresh tokens behind.
type SessionRepository interface {
	Put(ctx context.Context, s *entity.Session) error
	GetByRefreshToken(ctx context.Context, token string) (entity.Session, error)
	GetByUser(ctx context.Context, userID string) (entity.Session, error)
	ExtendExpiry(ctx context.Context, token string, expiresAt time.Time) error
	Delete(ctx context.Context, userID string) error
}
