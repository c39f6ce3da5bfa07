package http

import (
	"encoding/json"
	"net/http"

	"rentbaaz/internal/auth"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/usecase"
)

type ProfileHandler struct {
	users    usecase.UserRepository
	hashCost int
}

func NewProfileHandler(users usecase.UserRepository, hashCost int) *ProfileHandler {
	return &ProfileHandler{users: users, hashCost: hashCost}
}

type ProfileResponse struct {
	Role           string `json:"role"`
	PersonContact  string `json:"personContact"`
	MobileNumber   string `json:"mobileNumber"`
	Email          string `json:"email"`
	BusinessName   string `json:"businessName"`
	StreetAddress1 string `json:"streetAddress1"`
	StreetAddress2 string `json:"streetAddress2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Pincode        string `json:"pincode"`
	PlanID         string `json:"planID"`
}

func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": ProfileResponse{
			Role:           user.Role,
			PersonContact:  user.PersonContact,
			MobileNumber:   user.MobileNumber,
			Email:          user.Email,
			BusinessName:   user.BusinessName,
			StreetAddress1: user.StreetAddress1,
			StreetAddress2: user.StreetAddress2,
			City:           user.City,
			State:          user.State,
			Country:        user.Country,
			Pincode:        user.Pincode,
			PlanID:         user.PlanID,
		},
	})
}

type EditProfileRequest struct {
	PersonContact  *string `json:"personContact"`
	BusinessName   *string `json:"businessName"`
	StreetAddress1 *string `json:"streetAddress1"`
	StreetAddress2 *string `json:"streetAddress2"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	Country        *string `json:"country"`
	Pincode        *string `json:"pincode"`
}

// Edit patches the whitelisted profile fields; anything the request leaves
// out keeps its stored value.
func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	var req EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if req.PersonContact != nil {
		user.PersonContact = *req.PersonContact
	}
	if req.BusinessName != nil {
		user.BusinessName = *req.BusinessName
	}
	if req.StreetAddress1 != nil {
		user.StreetAddress1 = *req.StreetAddress1
	}
	if req.StreetAddress2 != nil {
		user.StreetAddress2 = *req.StreetAddress2
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.Pincode != nil {
		user.Pincode = *req.Pincode
	}

	if err := h.users.UpdateProfile(r.Context(), user); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type ResetPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

func (h *ProfileHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	match, err := auth.VerifyPassword(user.Password, req.OldPassword)
	if err != nil {
		serverError(w)
		return
	}
	if !match {
		unauthorized(w, "invalid password")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword, h.hashCost)
	if err != nil {
		serverError(w)
		return
	}
	if err := h.users.UpdatePassword(r.Context(), user.ID, hash); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}
