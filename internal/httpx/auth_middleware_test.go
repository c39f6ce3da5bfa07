package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) VerifyAccessToken(token string) (string, error) {
	return s.userID, s.err
}

type stubUserLoader struct {
	users map[string]entity.User
}

func (s stubUserLoader) GetByID(ctx context.Context, id string) (entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return entity.User{}, usecase.ErrNotFound
	}
	return u, nil
}

func TestRequireRole(t *testing.T) {
	admin := entity.User{ID: "a-1", Role: entity.RoleAdmin}
	regular := entity.User{ID: "u-1", Role: entity.RoleUser}
	loader := stubUserLoader{users: map[string]entity.User{
		"a-1": admin,
		"u-1": regular,
	}}

	tests := []struct {
		name       string
		verifier   stubVerifier
		gateRole   string
		authHeader string
		wantStatus int
	}{
		{
			name:       "admin passes admin gate",
			verifier:   stubVerifier{userID: "a-1"},
			gateRole:   entity.RoleAdmin,
			authHeader: "Bearer token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "user rejected by admin gate",
			verifier:   stubVerifier{userID: "u-1"},
			gateRole:   entity.RoleAdmin,
			authHeader: "Bearer token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin rejected by user gate",
			verifier:   stubVerifier{userID: "a-1"},
			gateRole:   entity.RoleUser,
			authHeader: "Bearer token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wildcard admits user",
			verifier:   stubVerifier{userID: "u-1"},
			gateRole:   RoleAny,
			authHeader: "Bearer token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wildcard admits admin",
			verifier:   stubVerifier{userID: "a-1"},
			gateRole:   RoleAny,
			authHeader: "Bearer token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			verifier:   stubVerifier{userID: "u-1"},
			gateRole:   RoleAny,
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			verifier:   stubVerifier{userID: "u-1"},
			gateRole:   RoleAny,
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bad token",
			verifier:   stubVerifier{err: assert.AnError},
			gateRole:   RoleAny,
			authHeader: "Bearer token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "user deleted after token issued",
			verifier:   stubVerifier{userID: "gone"},
			gateRole:   RoleAny,
			authHeader: "Bearer token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawUser entity.User
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				sawUser, _ = UserFrom(r)
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireRole(tt.verifier, loader, tt.gateRole)(next)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, called)
				assert.Equal(t, tt.verifier.userID, sawUser.ID)
			} else {
				assert.False(t, called, "downstream handler must not run on rejection")
			}
		})
	}
}
