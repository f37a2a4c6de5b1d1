package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storyloom/internal/contextutil"
	"storyloom/internal/service"
)

// ContainerHandler handles HTTP requests for the container hierarchy.
type ContainerHandler struct {
	containerService service.ContainerService
}

// NewContainerHandler creates a new ContainerHandler.
func NewContainerHandler(containerService service.ContainerService) *ContainerHandler {
	return &ContainerHandler{containerService: containerService}
}

// DeletedResponse lists the containers removed by a subtree delete.
type DeletedResponse struct {
	DeletedIDs []string `json:"deleted_ids"`
}

// Create handles POST /api/containers.
func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CreateContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	container, err := h.containerService.CreateContainer(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create container")
		return
	}
	writeJSON(w, http.StatusCreated, container)
}

// Get handles GET /api/containers/{containerID}.
func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	container, err := h.containerService.GetContainer(ctx, chi.URLParam(r, "containerID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load container")
		return
	}
	writeJSON(w, http.StatusOK, container)
}

// ListByUniverse handles GET /api/universes/{universeID}/containers.
func (h *ContainerHandler) ListByUniverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	containers, err := h.containerService.ListContainers(ctx, chi.URLParam(r, "universeID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list containers")
		return
	}
	writeJSON(w, http.StatusOK, containers)
}

// ListChildren handles GET /api/containers/{containerID}/children.
func (h *ContainerHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	children, err := h.containerService.ListChildren(ctx, chi.URLParam(r, "containerID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list children")
		return
	}
	writeJSON(w, http.StatusOK, children)
}

// Subtree handles GET /api/containers/{containerID}/subtree. The optional
// max_depth query parameter bounds the traversal relative to the root;
// omitted means the whole subtree.
func (h *ContainerHandler) Subtree(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	maxDepth := -1
	if raw := r.URL.Query().Get("max_depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "max_depth must be a non-negative integer")
			return
		}
		maxDepth = parsed
	}

	subtree, err := h.containerService.GetSubtree(ctx, chi.URLParam(r, "containerID"), maxDepth)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load subtree")
		return
	}
	writeJSON(w, http.StatusOK, subtree)
}

// Reorder handles POST /api/containers/{containerID}/reorder.
func (h *ContainerHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.ReorderChildrenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	parentID := chi.URLParam(r, "containerID")
	if err := h.containerService.ReorderChildren(ctx, parentID, req); err != nil {
		handleServiceError(w, ctx, err, "Failed to reorder children")
		return
	}

	children, err := h.containerService.ListChildren(ctx, parentID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list children")
		return
	}
	writeJSON(w, http.StatusOK, children)
}

// Update handles PATCH /api/containers/{containerID}.
func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.UpdateContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	container, err := h.containerService.UpdateContainer(ctx, chi.URLParam(r, "containerID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update container")
		return
	}
	writeJSON(w, http.StatusOK, container)
}

// Delete handles DELETE /api/containers/{containerID} and reports every
// container removed with the subtree.
func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.containerService.DeleteContainer(ctx, chi.URLParam(r, "containerID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete container")
		return
	}
	writeJSON(w, http.StatusOK, DeletedResponse{DeletedIDs: deleted})
}
