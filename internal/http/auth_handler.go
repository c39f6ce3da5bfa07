package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"rentbaaz/internal/auth"
	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/ident"
	"rentbaaz/internal/mail"
	"rentbaaz/internal/usecase"
)

const (
	userIDLength       = 10
	tempPasswordLength = 8
)

type AuthHandler struct {
	tokens   *auth.Service
	users    usecase.UserRepository
	mailer   mail.Sender
	hashCost int
}

func NewAuthHandler(tokens *auth.Service, users usecase.UserRepository, mailer mail.Sender, hashCost int) *AuthHandler {
	return &AuthHandler{
		tokens:   tokens,
		users:    users,
		mailer:   mailer,
		hashCost: hashCost,
	}
}

type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	user, err := h.users.GetByMobileNumber(r.Context(), req.MobileNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(w, "user not found")
			return
		}
		serverError(w)
		return
	}

	ok, err := auth.VerifyPassword(user.Password, req.Password)
	if err != nil {
		serverError(w)
		return
	}
	if !ok {
		unauthorized(w, "invalid password")
		return
	}

	pair, err := h.tokens.Login(r.Context(), user.ID)
	if err != nil {
		serverError(w)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{
		Success:      true,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

type RefreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

// Refresh trades the bearer refresh token for a new access token. An unknown
// token is a 400; a known but expired session is a 401 and the client has to
// log in again.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := httpx.BearerToken(r)
	if !ok {
		badRequest(w, "missing refresh token")
		return
	}

	accessToken, err := h.tokens.Refresh(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			badRequest(w, "unknown refresh token")
		case errors.Is(err, auth.ErrSessionExpired):
			httpx.JSONError(w, http.StatusUnauthorized, "SESSION_EXPIRED", "session expired, log in again", nil)
		default:
			serverError(w)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, RefreshResponse{Success: true, AccessToken: accessToken})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	if err := h.tokens.Logout(r.Context(), user.ID); err != nil {
		serverError(w)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type ForgotPasswordRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required"`
}

// ForgotPassword rotates the account password to a random temporary one and
// mails it to the registered address. The plaintext is never stored.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	user, err := h.users.GetByMobileNumber(r.Context(), req.MobileNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(w, "user not found")
			return
		}
		serverError(w)
		return
	}

	password, err := auth.GenerateTemporaryPassword(tempPasswordLength)
	if err != nil {
		serverError(w)
		return
	}
	hash, err := auth.HashPassword(password, h.hashCost)
	if err != nil {
		serverError(w)
		return
	}
	if err := h.users.UpdatePassword(r.Context(), user.ID, hash); err != nil {
		serverError(w)
		return
	}

	if err := h.mailer.Send(user.Email, "Forgot Password", "New password "+password); err != nil {
		log.Printf("forgot password mail failed: user_id=%s err=%v", user.ID, err)
		serverError(w)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "New password sent on registered email.",
	})
}

type NewUserRequest struct {
	Role           string   `json:"role" validate:"required,role"`
	PersonContact  string   `json:"personContact" validate:"required"`
	MobileNumber   string   `json:"mobileNumber" validate:"required,mobile"`
	Email          string   `json:"email" validate:"required,email"`
	BusinessName   string   `json:"businessName" validate:"required"`
	StreetAddress1 string   `json:"streetAddress1"`
	StreetAddress2 string   `json:"streetAddress2"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	Pincode        string   `json:"pincode"`
	PlanID         string   `json:"planID"`
	Products       []string `json:"products"`
}

type NewUserResponse struct {
	Success      bool   `json:"success"`
	UserID       string `json:"userID"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

// NewUser provisions an account with a collision-checked user ID and a
// temporary password the admin hands to the customer.
func (h *AuthHandler) NewUser(w http.ResponseWriter, r *http.Request) {
	var req NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	taken, err := h.users.EmailTaken(r.Context(), req.Email)
	if err != nil {
		serverError(w)
		return
	}
	if taken {
		conflict(w, "email already taken")
		return
	}

	taken, err = h.users.MobileTaken(r.Context(), req.MobileNumber)
	if err != nil {
		serverError(w)
		return
	}
	if taken {
		conflict(w, "mobile number already taken")
		return
	}

	userID, err := ident.Issue(r.Context(), userIDLength, ident.Hex, h.users.IDTaken)
	if err != nil {
		serverError(w)
		return
	}

	password, err := auth.GenerateTemporaryPassword(tempPasswordLength)
	if err != nil {
		serverError(w)
		return
	}
	hash, err := auth.HashPassword(password, h.hashCost)
	if err != nil {
		serverError(w)
		return
	}

	user := entity.User{
		ID:             userID,
		Role:           req.Role,
		PersonContact:  req.PersonContact,
		MobileNumber:   req.MobileNumber,
		Email:          req.Email,
		BusinessName:   req.BusinessName,
		StreetAddress1: req.StreetAddress1,
		StreetAddress2: req.StreetAddress2,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		Pincode:        req.Pincode,
		Password:       hash,
		PlanID:         req.PlanID,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		serverError(w)
		return
	}

	for _, productID := range req.Products {
		if err := h.users.AddProduct(r.Context(), userID, productID); err != nil {
			serverError(w)
			return
		}
	}

	httpx.JSON(w, http.StatusCreated, NewUserResponse{
		Success:      true,
		UserID:       userID,
		MobileNumber: req.MobileNumber,
		Password:     password,
	})
}

func (h *AuthHandler) EmailAvailable(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		badRequest(w, "email is required")
		return
	}
	if err := validate.Var(email, "email"); err != nil {
		badRequest(w, "email must be a valid email address")
		return
	}

	taken, err := h.users.EmailTaken(r.Context(), email)
	if err != nil {
		serverError(w)
		return
	}
	if taken {
		conflict(w, "email already taken")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) MobileAvailable(w http.ResponseWriter, r *http.Request) {
	mobile := r.URL.Query().Get("mobile")
	if mobile == "" {
		badRequest(w, "mobile is required")
		return
	}
	if err := validate.Var(mobile, "mobile"); err != nil {
		badRequest(w, "mobile must be a 10-digit mobile number")
		return
	}

	taken, err := h.users.MobileTaken(r.Context(), mobile)
	if err != nil {
		serverError(w)
		return
	}
	if taken {
		conflict(w, "mobile number already taken")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// DeleteUser removes a customer account. Admin accounts cannot be deleted
// through this route. Sessions and product links cascade with the row.
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		badRequest(w, "userId is required")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		storeError(w, err)
		return
	}
	if user.Role == entity.RoleAdmin {
		httpx.JSONError(w, http.StatusForbidden, "UNPRIVILEGED", "admin accounts cannot be deleted", nil)
		return
	}

	if err := h.users.Delete(r.Context(), userID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}
