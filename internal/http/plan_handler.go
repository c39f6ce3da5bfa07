package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/ident"
	"rentbaaz/internal/usecase"
)

const planIDLength = 4

type PlanHandler struct {
	plans usecase.PlanRepository
	users usecase.UserRepository
}

func NewPlanHandler(plans usecase.PlanRepository, users usecase.UserRepository) *PlanHandler {
	return &PlanHandler{plans: plans, users: users}
}

type CreatePlanRequest struct {
	PlanName    string   `json:"planName" validate:"required"`
	Cost        float64  `json:"cost" validate:"gte=0"`
	Description string   `json:"description"`
	Products    []string `json:"products"`
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	planID, err := ident.Issue(r.Context(), planIDLength, ident.Hex, h.plans.IDTaken)
	if err != nil {
		serverError(w)
		return
	}

	plan := entity.Plan{
		ID:          planID,
		Name:        req.PlanName,
		Cost:        req.Cost,
		Description: req.Description,
	}
	if err := h.plans.Create(r.Context(), &plan); err != nil {
		serverError(w)
		return
	}
	for _, productName := range req.Products {
		if err := h.plans.AddProduct(r.Context(), planID, productName); err != nil {
			serverError(w)
			return
		}
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "planID": planID})
}

func (h *PlanHandler) Remove(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("planID")
	if planID == "" {
		badRequest(w, "planID is required")
		return
	}
	if err := h.plans.Delete(r.Context(), planID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type ModifyPlanRequest struct {
	PlanID      string   `json:"planID" validate:"required"`
	Cost        *float64 `json:"cost"`
	PlanName    *string  `json:"planName"`
	Description *string  `json:"description"`
}

func (h *PlanHandler) Modify(w http.ResponseWriter, r *http.Request) {
	var req ModifyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if req.Cost != nil {
		if err := h.plans.UpdateCost(r.Context(), req.PlanID, *req.Cost); err != nil {
			storeError(w, err)
			return
		}
	}
	if req.PlanName != nil {
		if err := h.plans.UpdateName(r.Context(), req.PlanID, *req.PlanName); err != nil {
			storeError(w, err)
			return
		}
	}
	if req.Description != nil {
		if err := h.plans.UpdateDescription(r.Context(), req.PlanID, *req.Description); err != nil {
			storeError(w, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type planWithProducts struct {
	entity.Plan
	Products []string `json:"products"`
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	out := make([]planWithProducts, 0, len(plans))
	for _, plan := range plans {
		products, err := h.plans.Products(r.Context(), plan.ID)
		if err != nil {
			serverError(w)
			return
		}
		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, p.ProductName)
		}
		out = append(out, planWithProducts{Plan: plan, Products: names})
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "plans": out})
}

func (h *PlanHandler) UsersByPlan(w http.ResponseWriter, r *http.Request) {
	planID := r.URL.Query().Get("planID")
	if planID == "" {
		badRequest(w, "planID is required")
		return
	}
	if _, err := h.plans.Get(r.Context(), planID); err != nil {
		storeError(w, err)
		return
	}

	users, err := h.plans.UsersOnPlan(r.Context(), planID)
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "users": users})
}

type EditUserPlanRequest struct {
	UserID string `json:"userID" validate:"required"`
	PlanID string `json:"planID" validate:"required"`
}

func (h *PlanHandler) EditUserPlan(w http.ResponseWriter, r *http.Request) {
	var req EditUserPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if _, err := h.plans.Get(r.Context(), req.PlanID); err != nil {
		storeError(w, err)
		return
	}
	if err := h.users.UpdatePlan(r.Context(), req.UserID, req.PlanID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type PlanProductsRequest struct {
	PlanID   string   `json:"planID" validate:"required"`
	Products []string `json:"products" validate:"required,min=1"`
}

func (h *PlanHandler) AddProducts(w http.ResponseWriter, r *http.Request) {
	var req PlanProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if _, err := h.plans.Get(r.Context(), req.PlanID); err != nil {
		storeError(w, err)
		return
	}
	for _, productName := range req.Products {
		if err := h.plans.AddProduct(r.Context(), req.PlanID, productName); err != nil {
			serverError(w)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *PlanHandler) DeleteProducts(w http.ResponseWriter, r *http.Request) {
	var req PlanProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	for _, productName := range req.Products {
		err := h.plans.RemoveProduct(r.Context(), req.PlanID, productName)
		if err != nil && !errors.Is(err, usecase.ErrNotFound) {
			serverError(w)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}
