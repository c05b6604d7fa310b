package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/cart"
	"github.com/nveloso/pipeflow/internal/http/auth"
	"github.com/nveloso/pipeflow/internal/product"
	"github.com/nveloso/pipeflow/internal/sale"
)

type Handler struct {
	products *product.Service
	carts    *cart.Service
	sales    *sale.Service

	taxEnabled     bool
	taxRatePercent float64
}

func NewHandler(products *product.Service, carts *cart.Service, sales *sale.Service, taxEnabled bool, taxRatePercent float64) *Handler {
	return &Handler{
		products:       products,
		carts:          carts,
		sales:          sales,
		taxEnabled:     taxEnabled,
		taxRatePercent: taxRatePercent,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/products", h.searchProducts)
	r.Post("/checkout", h.checkout)
	r.Get("/sales/{saleID}", h.getSale)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	products, err := h.products.Search(r.Context(), claims.BusinessID, r.URL.Query().Get("q"))
	if err != nil {
		// A canceled search means the client already moved on.
		if errors.Is(err, context.Canceled) {
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toProductList(products)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type checkoutLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type checkoutRequest struct {
	Lines  []checkoutLine `json:"lines"`
	LeadID *uuid.UUID     `json:"lead_id,omitempty"`
}

// checkout rebuilds the cart server-side from fresh product reads, so
// the stock snapshots the quantity caps run against are as current as
// possible. The commit transaction remains the final gate.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := cart.New(h.taxEnabled, h.taxRatePercent)

	for _, line := range req.Lines {
		if line.Quantity < 1 {
			http.Error(w, "quantity must be at least one", http.StatusBadRequest)
			return
		}

		p, err := h.products.Get(r.Context(), claims.BusinessID, line.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		for range line.Quantity {
			if err := c.Add(*p); err != nil {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
		}
	}

	result, err := h.carts.Checkout(r.Context(), claims.BusinessID, claims.EmployeeID, c, req.LeadID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, sale.ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toCommitResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	saleID, err := uuid.Parse(chi.URLParam(r, "saleID"))
	if err != nil {
		http.Error(w, "invalid sale id", http.StatusBadRequest)
		return
	}

	s, err := h.sales.Get(r.Context(), claims.BusinessID, saleID)
	if err != nil {
		if errors.Is(err, sale.ErrNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	lines, err := h.sales.Lines(r.Context(), claims.BusinessID, saleID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSaleResponse(s, lines)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
