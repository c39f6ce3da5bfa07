package http

import (
	"encoding/json"
	"net/http"
	"time"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/ident"
	"rentbaaz/internal/usecase"
)

const complaintIDLength = 6

type ComplaintHandler struct {
	complaints usecase.ComplaintRepository
	products   usecase.ProductRepository
	users      usecase.UserRepository
}

func NewComplaintHandler(complaints usecase.ComplaintRepository, products usecase.ProductRepository, users usecase.UserRepository) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints, products: products, users: users}
}

type rentedProduct struct {
	entity.Product
	Faults []string `json:"faults"`
}

// PreComplaint lists the caller's rented products with their known fault
// categories, so the client can build the complaint form.
func (h *ComplaintHandler) PreComplaint(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	productIDs, err := h.users.ProductIDs(r.Context(), user.ID)
	if err != nil {
		serverError(w)
		return
	}

	out := make([]rentedProduct, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := h.products.Get(r.Context(), productID)
		if err != nil {
			storeError(w, err)
			return
		}
		faults, err := h.products.Faults(r.Context(), productID)
		if err != nil {
			serverError(w)
			return
		}
		names := make([]string, 0, len(faults))
		for _, f := range faults {
			names = append(names, f.Fault)
		}
		out = append(out, rentedProduct{Product: product, Faults: names})
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "products": out})
}

type AddComplaintRequest struct {
	ProductID   string `json:"productID" validate:"required"`
	Faults      string `json:"faults" validate:"required"`
	ProblemDesc string `json:"probDesc" validate:"required"`
}

func (h *ComplaintHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	var req AddComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	// A complaint can only be raised against a product the caller rents.
	productIDs, err := h.users.ProductIDs(r.Context(), user.ID)
	if err != nil {
		serverError(w)
		return
	}
	rented := false
	for _, id := range productIDs {
		if id == req.ProductID {
			rented = true
			break
		}
	}
	if !rented {
		httpx.JSONError(w, http.StatusForbidden, "UNPRIVILEGED", "product is not rented by this account", nil)
		return
	}

	complaintID, err := ident.Issue(r.Context(), complaintIDLength, ident.Numeric, h.complaints.IDTaken)
	if err != nil {
		serverError(w)
		return
	}

	complaint := entity.Complaint{
		ID:              complaintID,
		UserID:          user.ID,
		ProductID:       req.ProductID,
		Faults:          req.Faults,
		ProblemDesc:     req.ProblemDesc,
		DateOfComplaint: time.Now(),
		Status:          entity.ComplaintOpen,
	}
	if err := h.complaints.Create(r.Context(), &complaint); err != nil {
		serverError(w)
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "complaintID": complaintID})
}

func (h *ComplaintHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	complaints, err := h.complaints.ListByUser(r.Context(), user.ID)
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "complaints": complaints})
}

// Cancel lets a customer withdraw their own complaint while it is still open.
func (h *ComplaintHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFrom(r)
	if !ok {
		unauthorized(w, "not authenticated")
		return
	}

	complaintID := r.URL.Query().Get("complaintID")
	if complaintID == "" {
		badRequest(w, "complaintID is required")
		return
	}

	complaint, err := h.complaints.Get(r.Context(), complaintID)
	if err != nil {
		storeError(w, err)
		return
	}
	if complaint.UserID != user.ID {
		httpx.JSONError(w, http.StatusForbidden, "UNPRIVILEGED", "complaint belongs to another account", nil)
		return
	}
	if complaint.Status != entity.ComplaintOpen {
		conflict(w, "complaint is already closed")
		return
	}

	if err := h.complaints.Delete(r.Context(), complaintID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ComplaintHandler) CancelAdmin(w http.ResponseWriter, r *http.Request) {
	complaintID := r.URL.Query().Get("complaintID")
	if complaintID == "" {
		badRequest(w, "complaintID is required")
		return
	}
	if err := h.complaints.Delete(r.Context(), complaintID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type UpdateComplaintStatusRequest struct {
	ComplaintID string `json:"complaintID" validate:"required"`
	Status      int    `json:"status" validate:"gte=0,lte=1"`
}

func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if err := h.complaints.UpdateStatus(r.Context(), req.ComplaintID, req.Status); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type AddCostRequest struct {
	ComplaintID string  `json:"complaintID" validate:"required"`
	Cost        float64 `json:"cost" validate:"gte=0"`
}

func (h *ComplaintHandler) AddCost(w http.ResponseWriter, r *http.Request) {
	var req AddCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if err := h.complaints.UpdateCost(r.Context(), req.ComplaintID, req.Cost); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type ModifyComplaintRequest struct {
	ComplaintID       string     `json:"complaintID" validate:"required"`
	Faults            string     `json:"faults" validate:"required"`
	ProblemDesc       string     `json:"probDesc" validate:"required"`
	DateOfMaintenance *time.Time `json:"dateOfMaintenance"`
	Status            int        `json:"status" validate:"gte=0,lte=1"`
	Cost              float64    `json:"cost" validate:"gte=0"`
}

func (h *ComplaintHandler) Modify(w http.ResponseWriter, r *http.Request) {
	var req ModifyComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	complaint, err := h.complaints.Get(r.Context(), req.ComplaintID)
	if err != nil {
		storeError(w, err)
		return
	}

	complaint.Faults = req.Faults
	complaint.ProblemDesc = req.ProblemDesc
	complaint.DateOfMaintenance = req.DateOfMaintenance
	complaint.Status = req.Status
	complaint.Cost = req.Cost

	if err := h.complaints.Update(r.Context(), complaint); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ComplaintHandler) Active(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, entity.ComplaintOpen)
}

func (h *ComplaintHandler) Inactive(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, entity.ComplaintClosed)
}

func (h *ComplaintHandler) listByStatus(w http.ResponseWriter, r *http.Request, status int) {
	complaints, err := h.complaints.ListByStatus(r.Context(), status)
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "complaints": complaints})
}

type UserComplaintsRequest struct {
	UserID string `json:"userID" validate:"required"`
}

func (h *ComplaintHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	var req UserComplaintsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if _, err := h.users.GetByID(r.Context(), req.UserID); err != nil {
		storeError(w, err)
		return
	}
	complaints, err := h.complaints.ListByUser(r.Context(), req.UserID)
	if err != nil {
		serverError(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "complaints": complaints})
}
