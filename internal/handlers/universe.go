package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storyloom/internal/contextutil"
	"storyloom/internal/service"
)

// UniverseHandler handles HTTP requests for universes.
type UniverseHandler struct {
	universeService service.UniverseService
}

// NewUniverseHandler creates a new UniverseHandler.
func NewUniverseHandler(universeService service.UniverseService) *UniverseHandler {
	return &UniverseHandler{universeService: universeService}
}

// Create handles POST /api/universes.
func (h *UniverseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CreateUniverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	universe, err := h.universeService.CreateUniverse(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create universe")
		return
	}
	writeJSON(w, http.StatusCreated, universe)
}

// List handles GET /api/universes.
func (h *UniverseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	universes, err := h.universeService.ListUniverses(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list universes")
		return
	}
	writeJSON(w, http.StatusOK, universes)
}

// Get handles GET /api/universes/{universeID}.
func (h *UniverseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	universe, err := h.universeService.GetUniverse(ctx, chi.URLParam(r, "universeID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load universe")
		return
	}
	writeJSON(w, http.StatusOK, universe)
}

// Update handles PATCH /api/universes/{universeID}.
func (h *UniverseHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.UpdateUniverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	universe, err := h.universeService.UpdateUniverse(ctx, chi.URLParam(r, "universeID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update universe")
		return
	}
	writeJSON(w, http.StatusOK, universe)
}

// Delete handles DELETE /api/universes/{universeID}.
func (h *UniverseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.universeService.DeleteUniverse(ctx, chi.URLParam(r, "universeID")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete universe")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
