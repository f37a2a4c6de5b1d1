package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storyloom/internal/contextutil"
	"storyloom/internal/service"
)

// StoryHandler handles HTTP requests for stories and their versioning
// lifecycle.
type StoryHandler struct {
	storyService service.StoryService
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

// updateStoryRequest is the wire form of a story update. ContainerID is
// kept raw so an explicit null (move to universe root) can be told apart
// from the field being absent (leave the container alone).
type updateStoryRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	ContainerID json.RawMessage `json:"container_id"`
}

// CleanupResponse reports how many snapshots an explicit trim removed.
type CleanupResponse struct {
	DeletedCount int `json:"deleted_count"`
}

// Create handles POST /api/stories.
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CreateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	story, err := h.storyService.CreateStory(ctx, req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create story")
		return
	}
	writeJSON(w, http.StatusCreated, story)
}

// Get handles GET /api/stories/{storyID}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	story, err := h.storyService.GetStory(ctx, chi.URLParam(r, "storyID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load story")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// ListByUniverse handles GET /api/universes/{universeID}/stories. The
// optional container_id query parameter narrows the list to one container.
func (h *StoryHandler) ListByUniverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var containerID *string
	if raw := r.URL.Query().Get("container_id"); raw != "" {
		containerID = &raw
	}

	stories, err := h.storyService.ListStories(ctx, chi.URLParam(r, "universeID"), containerID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list stories")
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// Update handles PATCH /api/stories/{storyID}.
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req updateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcReq := service.UpdateStoryRequest{
		Title:       req.Title,
		Description: req.Description,
	}
	if len(req.ContainerID) > 0 {
		svcReq.SetContainer = true
		if string(req.ContainerID) != "null" {
			var id string
			if err := json.Unmarshal(req.ContainerID, &id); err != nil {
				logger.WarnContext(ctx, "invalid container_id", "error", err)
				writeError(w, http.StatusBadRequest, "container_id must be a string or null")
				return
			}
			svcReq.ContainerID = &id
		}
	}

	story, err := h.storyService.UpdateStory(ctx, chi.URLParam(r, "storyID"), svcReq)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update story")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// Delete handles DELETE /api/stories/{storyID}.
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.storyService.DeleteStory(ctx, chi.URLParam(r, "storyID")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete story")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateSnapshot handles POST /api/stories/{storyID}/snapshots.
func (h *StoryHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CreateSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.storyService.CreateSnapshot(ctx, chi.URLParam(r, "storyID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create snapshot")
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

// UpdateSnapshotContent handles PUT /api/snapshots/{snapshotID}/content.
func (h *StoryHandler) UpdateSnapshotContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.UpdateSnapshotContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := h.storyService.UpdateSnapshotContent(ctx, chi.URLParam(r, "snapshotID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update snapshot")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// SwitchSnapshot handles POST /api/stories/{storyID}/switch-snapshot.
func (h *StoryHandler) SwitchSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.SwitchSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	story, err := h.storyService.SwitchSnapshot(ctx, chi.URLParam(r, "storyID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to switch snapshot")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// CleanupSnapshots handles POST /api/stories/{storyID}/cleanup-snapshots.
func (h *StoryHandler) CleanupSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CleanupSnapshotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deleted, err := h.storyService.CleanupSnapshots(ctx, chi.URLParam(r, "storyID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to clean up snapshots")
		return
	}
	writeJSON(w, http.StatusOK, CleanupResponse{DeletedCount: deleted})
}

// CreateVersion handles POST /api/stories/{storyID}/versions.
func (h *StoryHandler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	version, err := h.storyService.CreateVersion(ctx, chi.URLParam(r, "storyID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create version")
		return
	}
	writeJSON(w, http.StatusCreated, version)
}

// ListVersions handles GET /api/stories/{storyID}/versions.
func (h *StoryHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	versions, err := h.storyService.ListVersions(ctx, chi.URLParam(r, "storyID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list versions")
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

// ListSnapshots handles GET /api/stories/{storyID}/versions/{versionID}/snapshots.
func (h *StoryHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshots, err := h.storyService.ListSnapshots(ctx,
		chi.URLParam(r, "storyID"), chi.URLParam(r, "versionID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list snapshots")
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// RenameVersion handles PATCH /api/stories/{storyID}/versions/{versionID}.
func (h *StoryHandler) RenameVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.RenameVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	version, err := h.storyService.RenameVersion(ctx,
		chi.URLParam(r, "storyID"), chi.URLParam(r, "versionID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to rename version")
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// DeleteVersion handles DELETE /api/stories/{storyID}/versions/{versionID}
// and returns the story with its pointers as they stand after the delete.
func (h *StoryHandler) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	story, err := h.storyService.DeleteVersion(ctx,
		chi.URLParam(r, "storyID"), chi.URLParam(r, "versionID"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete version")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// SwitchVersion handles POST /api/stories/{storyID}/switch-version.
func (h *StoryHandler) SwitchVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req service.SwitchVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	story, err := h.storyService.SwitchVersion(ctx, chi.URLParam(r, "storyID"), req)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to switch version")
		return
	}
	writeJSON(w, http.StatusOK, story)
}
