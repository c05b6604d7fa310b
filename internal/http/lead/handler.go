package lead

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/http/auth"
	"github.com/nveloso/pipeflow/internal/lead"
)

type Handler struct {
	svc *lead.Service
}

func NewHandler(svc *lead.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Route("/{leadID}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Patch("/", h.update)
		r.Post("/move", h.move)
		r.Post("/archive", h.archive)
		r.Get("/items", h.listItems)
		r.Post("/items", h.addItem)
		r.Patch("/items/{itemID}", h.setItemQuantity)
		r.Delete("/items/{itemID}", h.removeItem)
	})
}

func writeLeadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lead.ErrNotFound):
		http.Error(w, "lead not found", http.StatusNotFound)
	case errors.Is(err, lead.ErrClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, lead.ErrEmptyName), errors.Is(err, lead.ErrNoStage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type createLeadRequest struct {
	StageID      uuid.UUID  `json:"stage_id"`
	CustomerName string     `json:"customer_name"`
	Value        int64      `json:"value"`
	Assignee     *uuid.UUID `json:"assignee,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Create(r.Context(), lead.CreateParams{
		BusinessID:   claims.BusinessID,
		StageID:      req.StageID,
		CustomerName: req.CustomerName,
		Value:        req.Value,
		Assignee:     req.Assignee,
	})
	if err != nil {
		writeLeadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Get(r.Context(), claims.BusinessID, leadID)
	if err != nil {
		writeLeadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateLeadRequest struct {
	CustomerName *string    `json:"customer_name,omitempty"`
	Assignee     *uuid.UUID `json:"assignee,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	var req updateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Update(r.Context(), claims.BusinessID, leadID, lead.UpdateParams{
		CustomerName: req.CustomerName,
		Assignee:     req.Assignee,
	})
	if err != nil {
		writeLeadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moveLeadRequest struct {
	StageID uuid.UUID `json:"stage_id"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	var req moveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Move(r.Context(), claims.BusinessID, leadID, req.StageID); err != nil {
		writeLeadError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type archiveLeadRequest struct {
	WithRevenue bool `json:"with_revenue"`
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	var req archiveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Archive(r.Context(), claims.BusinessID, leadID, req.WithRevenue); err != nil {
		writeLeadError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Items(r.Context(), claims.BusinessID, leadID)
	if err != nil {
		writeLeadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toItemList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddItem(r.Context(), lead.AddItemParams{
		BusinessID: claims.BusinessID,
		LeadID:     leadID,
		ProductID:  req.ProductID,
		Name:       req.Name,
		SKU:        req.SKU,
		Price:      req.Price,
		Quantity:   req.Quantity,
	}); err != nil {
		writeLeadError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setItemQuantity(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req setItemQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetItemQuantity(r.Context(), claims.BusinessID, leadID, itemID, req.Quantity); err != nil {
		writeLeadError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	leadID, err := uuid.Parse(chi.URLParam(r, "leadID"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), claims.BusinessID, leadID, itemID); err != nil {
		writeLeadError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
