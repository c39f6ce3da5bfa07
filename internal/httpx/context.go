package httpx

import (
	"context"
	"net/http"

	"rentbaaz/internal/entity"
)

type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "requestID"
)

// UserFrom retrieves the authenticated user attached by the role gate.
func UserFrom(r *http.Request) (entity.User, bool) {
	u, ok := r.Context().Value(userKey).(entity.User)
	return u, ok
}

// UserIDFrom returns the authenticated user's ID, or "" when the request is
// anonymous.
func UserIDFrom(r *http.Request) string {
	if u, ok := UserFrom(r); ok {
		return u.ID
	}
	return ""
}

func ContextWithUser(ctx context.Context, u entity.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
