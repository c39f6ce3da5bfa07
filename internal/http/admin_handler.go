package http

import (
	"errors"
	"net/http"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/usecase"
)

// AdminHandler serves the back-office overview routes.
type AdminHandler struct {
	users      usecase.UserRepository
	plans      usecase.PlanRepository
	products   usecase.ProductRepository
	complaints usecase.ComplaintRepository
}

func NewAdminHandler(users usecase.UserRepository, plans usecase.PlanRepository, products usecase.ProductRepository, complaints usecase.ComplaintRepository) *AdminHandler {
	return &AdminHandler{users: users, plans: plans, products: products, complaints: complaints}
}

func (h *AdminHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "users": users})
}

type userDetailsResponse struct {
	Success        bool               `json:"success"`
	UserDetail     entity.User        `json:"userDetail"`
	ProductDetails []entity.Product   `json:"productDetails"`
	UserPlan       *entity.Plan       `json:"userPlan"`
	UserComplaints []entity.Complaint `json:"userComplaints"`
}

// UserDetails aggregates a customer's record with their rented products,
// current plan and complaint history.
func (h *AdminHandler) UserDetails(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userID")
	if userID == "" {
		badRequest(w, "userID is required")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		storeError(w, err)
		return
	}

	productIDs, err := h.users.ProductIDs(r.Context(), userID)
	if err != nil {
		serverError(w)
		return
	}
	products := make([]entity.Product, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := h.products.Get(r.Context(), productID)
		if err != nil {
			if errors.Is(err, usecase.ErrNotFound) {
				continue
			}
			serverError(w)
			return
		}
		products = append(products, product)
	}

	var plan *entity.Plan
	if user.PlanID != "" {
		p, err := h.plans.Get(r.Context(), user.PlanID)
		if err != nil && !errors.Is(err, usecase.ErrNotFound) {
			serverError(w)
			return
		}
		if err == nil {
			plan = &p
		}
	}

	complaints, err := h.complaints.ListByUser(r.Context(), userID)
	if err != nil {
		serverError(w)
		return
	}

	httpx.JSON(w, http.StatusOK, userDetailsResponse{
		Success:        true,
		UserDetail:     user,
		ProductDetails: products,
		UserPlan:       plan,
		UserComplaints: complaints,
	})
}
