package pipeline

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/http/auth"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

type Handler struct {
	svc    *pipeline.Service
	boards *board.Service
}

func NewHandler(svc *pipeline.Service, boards *board.Service) *Handler {
	return &Handler{svc: svc, boards: boards}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Route("/{pipelineID}", func(r chi.Router) {
		r.Get("/board", h.board)
		r.Post("/stages", h.createStage)
		r.Post("/stages/move", h.moveStage)
		r.Patch("/stages/{stageID}", h.updateStage)
		r.Post("/stages/{stageID}/revenue", h.setRevenue)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pipelines, err := h.svc.Pipelines(r.Context(), claims.BusinessID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPipelineList(pipelines)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pipelineID, err := uuid.Parse(chi.URLParam(r, "pipelineID"))
	if err != nil {
		http.Error(w, "invalid pipeline id", http.StatusBadRequest)
		return
	}

	b, err := h.boards.Load(r.Context(), claims.BusinessID, pipelineID)
	if err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			http.Error(w, "pipeline not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBoardResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createStageRequest struct {
	Name            string     `json:"name"`
	Color           string     `json:"color"`
	IsRevenue       bool       `json:"is_revenue"`
	IsInput         bool       `json:"is_input"`
	DefaultAssignee *uuid.UUID `json:"default_assignee,omitempty"`
}

func (h *Handler) createStage(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pipelineID, err := uuid.Parse(chi.URLParam(r, "pipelineID"))
	if err != nil {
		http.Error(w, "invalid pipeline id", http.StatusBadRequest)
		return
	}

	var req createStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stage, err := h.svc.AddStage(r.Context(), pipeline.CreateStageParams{
		PipelineID:      pipelineID,
		BusinessID:      claims.BusinessID,
		Name:            req.Name,
		Color:           req.Color,
		IsRevenue:       req.IsRevenue,
		IsInput:         req.IsInput,
		DefaultAssignee: req.DefaultAssignee,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toStageResponse(stage)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type moveStageRequest struct {
	Index     int                `json:"index"`
	Direction pipeline.Direction `json:"direction"`
}

func (h *Handler) moveStage(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pipelineID, err := uuid.Parse(chi.URLParam(r, "pipelineID"))
	if err != nil {
		http.Error(w, "invalid pipeline id", http.StatusBadRequest)
		return
	}

	var req moveStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Direction != pipeline.DirectionLeft && req.Direction != pipeline.DirectionRight {
		http.Error(w, "direction must be left or right", http.StatusBadRequest)
		return
	}

	if err := h.svc.MoveStage(r.Context(), claims.BusinessID, pipelineID, req.Index, req.Direction); err != nil {
		if errors.Is(err, pipeline.ErrReordering) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateStageRequest struct {
	Name            *string    `json:"name,omitempty"`
	Color           *string    `json:"color,omitempty"`
	DefaultAssignee *uuid.UUID `json:"default_assignee,omitempty"`
}

func (h *Handler) updateStage(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stageID, err := uuid.Parse(chi.URLParam(r, "stageID"))
	if err != nil {
		http.Error(w, "invalid stage id", http.StatusBadRequest)
		return
	}

	var req updateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stage, err := h.svc.UpdateStage(r.Context(), claims.BusinessID, stageID, pipeline.UpdateStageParams{
		Name:            req.Name,
		Color:           req.Color,
		DefaultAssignee: req.DefaultAssignee,
	})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNotFound):
			http.Error(w, "stage not found", http.StatusNotFound)
		case errors.Is(err, pipeline.ErrEmptyName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStageResponse(stage)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) setRevenue(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stageID, err := uuid.Parse(chi.URLParam(r, "stageID"))
	if err != nil {
		http.Error(w, "invalid stage id", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetRevenue(r.Context(), claims.BusinessID, stageID); err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			http.Error(w, "stage not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
