package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentbaaz/internal/auth"
	"rentbaaz/internal/testutil"
)

func TestViewProfile(t *testing.T) {
	customer := testutil.TestUser
	h := NewProfileHandler(newFakeUserRepo(customer), bcrypt.MinCost)

	r := asCustomer(testutil.NewRequest(http.MethodGet, "/profile/viewProfile", nil), customer)
	w := httptest.NewRecorder()
	h.View(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	profile, ok := resp.Body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, customer.Email, profile["email"])
	assert.Equal(t, customer.MobileNumber, profile["mobileNumber"])
	// The password hash must never leak through the profile view.
	_, leaked := profile["password"]
	assert.False(t, leaked)
}

func TestEditProfile(t *testing.T) {
	customer := testutil.TestUser
	customer.City = "Pune"
	customer.BusinessName = "Old Name"

	users := newFakeUserRepo(customer)
	h := NewProfileHandler(users, bcrypt.MinCost)

	newName := "New Name"
	r := asCustomer(testutil.NewRequest(http.MethodPatch, "/profile/editProfile", EditProfileRequest{
		BusinessName: &newName,
	}), customer)
	w := httptest.NewRecorder()
	h.Edit(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	updated := users.users[customer.ID]
	assert.Equal(t, "New Name", updated.BusinessName)
	// Fields the request left out keep their stored values.
	assert.Equal(t, "Pune", updated.City)
	assert.Equal(t, customer.Email, updated.Email)
}

func TestResetPassword(t *testing.T) {
	hash, err := auth.HashPassword("current-pass", bcrypt.MinCost)
	require.NoError(t, err)
	customer := testutil.TestUser
	customer.Password = hash

	t.Run("wrong current password", func(t *testing.T) {
		users := newFakeUserRepo(customer)
		h := NewProfileHandler(users, bcrypt.MinCost)

		r := asCustomer(testutil.NewRequest(http.MethodPost, "/profile/resetPassword", ResetPasswordRequest{
			OldPassword: "not-the-password",
			NewPassword: "brand-new-pass",
		}), customer)
		w := httptest.NewRecorder()
		h.ResetPassword(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, hash, users.users[customer.ID].Password)
	})

	t.Run("new password too short", func(t *testing.T) {
		h := NewProfileHandler(newFakeUserRepo(customer), bcrypt.MinCost)

		r := asCustomer(testutil.NewRequest(http.MethodPost, "/profile/resetPassword", ResetPasswordRequest{
			OldPassword: "current-pass",
			NewPassword: "short",
		}), customer)
		w := httptest.NewRecorder()
		h.ResetPassword(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("success stores the new hash", func(t *testing.T) {
		users := newFakeUserRepo(customer)
		h := NewProfileHandler(users, bcrypt.MinCost)

		r := asCustomer(testutil.NewRequest(http.MethodPost, "/profile/resetPassword", ResetPasswordRequest{
			OldPassword: "current-pass",
			NewPassword: "brand-new-pass",
		}), customer)
		w := httptest.NewRecorder()
		h.ResetPassword(w, r)

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)

		ok, err := auth.VerifyPassword(users.users[customer.ID].Password, "brand-new-pass")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
