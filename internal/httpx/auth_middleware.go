package httpx

import (
	"context"
	"net/http"
	"strings"

	"rentbaaz/internal/entity"
)

// RoleAny admits any authenticated identity regardless of role.
const RoleAny = "*"

// TokenVerifier decodes a signed access token into a user ID.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

// UserLoader resolves the acting user by ID. The gate re-loads the record on
// every request so a token issued before a user was deleted stops working.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (entity.User, error)
}

// RequireRole guards a route with a fixed role requirement. The roles are a
// flat pair (admin, user) plus the RoleAny sentinel: a user token never
// satisfies an admin gate and an admin token never satisfies a user gate.
// On success the resolved user rides on the request context; on any failure
// the downstream handler never runs.
func RequireRole(tokens TokenVerifier, users UserLoader, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or malformed authorization header", nil)
				return
			}

			userID, err := tokens.VerifyAccessToken(token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token", nil)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token", nil)
				return
			}

			if role != RoleAny && user.Role != role {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "insufficient role", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken pulls the credential out of the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}
