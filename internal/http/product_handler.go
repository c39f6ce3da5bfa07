package http

import (
	"encoding/json"
	"net/http"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/httpx"
	"rentbaaz/internal/ident"
	"rentbaaz/internal/usecase"
)

const productIDLength = 8

type ProductHandler struct {
	products usecase.ProductRepository
}

func NewProductHandler(products usecase.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

type AddProductRequest struct {
	ProductName  string   `json:"productName" validate:"required"`
	ProductModel string   `json:"productModel" validate:"required"`
	Faults       []string `json:"faults"`
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	productID, err := ident.Issue(r.Context(), productIDLength, ident.Hex, h.products.IDTaken)
	if err != nil {
		serverError(w)
		return
	}

	product := entity.Product{ID: productID, Name: req.ProductName, Model: req.ProductModel}
	if err := h.products.Create(r.Context(), &product); err != nil {
		serverError(w)
		return
	}
	for _, fault := range req.Faults {
		if err := h.products.AddFault(r.Context(), productID, fault); err != nil {
			serverError(w)
			return
		}
	}

	httpx.JSON(w, http.StatusCreated, map[string]any{"success": true, "productID": productID})
}

func (h *ProductHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productID")
	if productID == "" {
		badRequest(w, "productID is required")
		return
	}
	if err := h.products.Delete(r.Context(), productID); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type productWithFaults struct {
	entity.Product
	Faults []string `json:"faults"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		serverError(w)
		return
	}

	out := make([]productWithFaults, 0, len(products))
	for _, product := range products {
		faults, err := h.products.Faults(r.Context(), product.ID)
		if err != nil {
			serverError(w)
			return
		}
		names := make([]string, 0, len(faults))
		for _, f := range faults {
			names = append(names, f.Fault)
		}
		out = append(out, productWithFaults{Product: product, Faults: names})
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"success": true, "products": out})
}

type ModifyProductRequest struct {
	ProductID    string `json:"productID" validate:"required"`
	ProductName  string `json:"productName" validate:"required"`
	ProductModel string `json:"productModel" validate:"required"`
}

func (h *ProductHandler) Modify(w http.ResponseWriter, r *http.Request) {
	var req ModifyProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	product := entity.Product{ID: req.ProductID, Name: req.ProductName, Model: req.ProductModel}
	if err := h.products.Update(r.Context(), product); err != nil {
		storeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

type ProductFaultsRequest struct {
	ProductID string   `json:"productID" validate:"required"`
	Faults    []string `json:"faults" validate:"required,min=1"`
}

func (h *ProductHandler) AddFaults(w http.ResponseWriter, r *http.Request) {
	var req ProductFaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	if _, err := h.products.Get(r.Context(), req.ProductID); err != nil {
		storeError(w, err)
		return
	}
	for _, fault := range req.Faults {
		if err := h.products.AddFault(r.Context(), req.ProductID, fault); err != nil {
			serverError(w)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ProductHandler) RemoveFaults(w http.ResponseWriter, r *http.Request) {
	var req ProductFaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		validationFailed(w, details)
		return
	}

	for _, fault := range req.Faults {
		if err := h.products.RemoveFault(r.Context(), req.ProductID, fault); err != nil {
			storeError(w, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}
