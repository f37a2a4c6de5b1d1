package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"storyloom/internal/service"
	"storyloom/internal/service/mocks"
	"storyloom/internal/storage"
)

func TestStoryHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       interface{}
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
	}{
		{
			name: "successful create",
			body: service.CreateStoryRequest{UniverseID: "u-1", Title: "The Lighthouse"},
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					CreateStory(gomock.Any(), service.CreateStoryRequest{UniverseID: "u-1", Title: "The Lighthouse"}).
					Return(&storage.Story{ID: "s-1", UniverseID: "u-1", Title: "The Lighthouse"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown universe",
			body: service.CreateStoryRequest{UniverseID: "ghost", Title: "The Lighthouse"},
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					CreateStory(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "container in another universe",
			body: service.CreateStoryRequest{UniverseID: "u-1", ContainerID: strPtr("c-other"), Title: "The Lighthouse"},
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					CreateStory(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrOwnershipMismatch)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid JSON body",
			body:       "not json",
			mockSetup:  func(m *mocks.MockStoryService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			handler.Create(w, newRequest(http.MethodPost, "/api/stories", tt.body, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("Create() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestStoryHandler_ListByUniverse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		target    string
		mockSetup func(*mocks.MockStoryService)
	}{
		{
			name:   "all stories in universe",
			target: "/api/universes/u-1/stories",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					ListStories(gomock.Any(), "u-1", nil).
					Return([]storage.Story{{ID: "s-1"}}, nil)
			},
		},
		{
			name:   "filtered by container",
			target: "/api/universes/u-1/stories?container_id=c-1",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					ListStories(gomock.Any(), "u-1", gomock.Cond(func(x any) bool {
						id, ok := x.(*string)
						if !ok {
							return false
						}
						return id != nil && *id == "c-1"
					})).
					Return([]storage.Story{{ID: "s-1"}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			handler.ListByUniverse(w, newRequest(http.MethodGet, tt.target, nil, map[string]string{"universeID": "u-1"}))

			if w.Code != http.StatusOK {
				t.Errorf("ListByUniverse() status = %v, want %v", w.Code, http.StatusOK)
			}
		})
	}
}

func TestStoryHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
	}{
		{
			name: "container absent leaves placement alone",
			body: `{"title": "Renamed"}`,
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					UpdateStory(gomock.Any(), "s-1", gomock.Cond(func(x any) bool {
						req, ok := x.(service.UpdateStoryRequest)
						if !ok {
							return false
						}
						return !req.SetContainer && req.Title != nil && *req.Title == "Renamed"
					})).
					Return(&storage.Story{ID: "s-1", Title: "Renamed"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit null moves story to universe root",
			body: `{"container_id": null}`,
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					UpdateStory(gomock.Any(), "s-1", gomock.Cond(func(x any) bool {
						req, ok := x.(service.UpdateStoryRequest)
						if !ok {
							return false
						}
						return req.SetContainer && req.ContainerID == nil
					})).
					Return(&storage.Story{ID: "s-1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "container id moves story",
			body: `{"container_id": "c-2"}`,
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					UpdateStory(gomock.Any(), "s-1", gomock.Cond(func(x any) bool {
						req, ok := x.(service.UpdateStoryRequest)
						if !ok {
							return false
						}
						return req.SetContainer && req.ContainerID != nil && *req.ContainerID == "c-2"
					})).
					Return(&storage.Story{ID: "s-1", ContainerID: strPtr("c-2")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "container id of wrong type",
			body:       `{"container_id": 7}`,
			mockSetup:  func(m *mocks.MockStoryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "move to container in another universe",
			body: `{"container_id": "c-foreign"}`,
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					UpdateStory(gomock.Any(), "s-1", gomock.Any()).
					Return(nil, service.ErrOwnershipMismatch)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			handler.Update(w, newRequest(http.MethodPatch, "/api/stories/s-1", tt.body, map[string]string{"storyID": "s-1"}))

			if w.Code != tt.wantStatus {
				t.Errorf("Update() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestStoryHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStoryService(ctrl)
	mockService.EXPECT().DeleteStory(gomock.Any(), "s-1").Return(nil)

	handler := NewStoryHandler(mockService)
	w := httptest.NewRecorder()

	handler.Delete(w, newRequest(http.MethodDelete, "/api/stories/s-1", nil, map[string]string{"storyID": "s-1"}))

	if w.Code != http.StatusNoContent {
		t.Errorf("Delete() status = %v, want %v", w.Code, http.StatusNoContent)
	}
}

func TestStoryHandler_CreateSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStoryService(ctrl)
	mockService.EXPECT().
		CreateSnapshot(gomock.Any(), "s-1", service.CreateSnapshotRequest{Content: "New draft."}).
		Return(&storage.StorySnapshot{ID: "snap-2", VersionID: "v-1", Content: "New draft."}, nil)

	handler := NewStoryHandler(mockService)
	w := httptest.NewRecorder()

	body := service.CreateSnapshotRequest{Content: "New draft."}
	handler.CreateSnapshot(w, newRequest(http.MethodPost, "/api/stories/s-1/snapshots", body, map[string]string{"storyID": "s-1"}))

	if w.Code != http.StatusCreated {
		t.Fatalf("CreateSnapshot() status = %v, want %v", w.Code, http.StatusCreated)
	}
	var resp storage.StorySnapshot
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("CreateSnapshot() invalid JSON: %v", err)
	}
	if resp.ID != "snap-2" || resp.Content != "New draft." {
		t.Errorf("CreateSnapshot() = %+v, want snap-2 with new content", resp)
	}
}

func TestStoryHandler_SwitchSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
	}{
		{
			name: "switch within active version",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					SwitchSnapshot(gomock.Any(), "s-1", service.SwitchSnapshotRequest{SnapshotID: "snap-1"}).
					Return(&storage.Story{ID: "s-1", ActiveSnapshotID: strPtr("snap-1")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "snapshot belongs to another version",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					SwitchSnapshot(gomock.Any(), "s-1", gomock.Any()).
					Return(nil, service.ErrOwnershipMismatch)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			body := service.SwitchSnapshotRequest{SnapshotID: "snap-1"}
			handler.SwitchSnapshot(w, newRequest(http.MethodPost, "/api/stories/s-1/switch-snapshot", body, map[string]string{"storyID": "s-1"}))

			if w.Code != tt.wantStatus {
				t.Errorf("SwitchSnapshot() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestStoryHandler_CleanupSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       interface{}
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
		wantCount  int
	}{
		{
			name: "trims history",
			body: service.CleanupSnapshotsRequest{KeepCount: 2},
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					CleanupSnapshots(gomock.Any(), "s-1", service.CleanupSnapshotsRequest{KeepCount: 2}).
					Return(3, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  3,
		},
		{
			name: "negative keep count rejected",
			body: map[string]int{"keep_count": -1},
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					CleanupSnapshots(gomock.Any(), "s-1", service.CleanupSnapshotsRequest{KeepCount: -1}).
					Return(0, &service.ValidationError{Field: "keep_count", Message: "keep_count must be at least 0"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			handler.CleanupSnapshots(w, newRequest(http.MethodPost, "/api/stories/s-1/cleanup-snapshots", tt.body, map[string]string{"storyID": "s-1"}))

			if w.Code != tt.wantStatus {
				t.Errorf("CleanupSnapshots() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var resp CleanupResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("CleanupSnapshots() invalid JSON: %v", err)
				}
				if resp.DeletedCount != tt.wantCount {
					t.Errorf("CleanupSnapshots() deleted = %d, want %d", resp.DeletedCount, tt.wantCount)
				}
			}
		})
	}
}

func TestStoryHandler_DeleteVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
	}{
		{
			name: "delete returns updated story",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					DeleteVersion(gomock.Any(), "s-1", "v-2").
					Return(&storage.Story{ID: "s-1", ActiveVersionID: strPtr("v-1")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "last version refused",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					DeleteVersion(gomock.Any(), "s-1", "v-2").
					Return(nil, service.ErrLastVersion)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "version of another story",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					DeleteVersion(gomock.Any(), "s-1", "v-2").
					Return(nil, service.ErrOwnershipMismatch)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			params := map[string]string{"storyID": "s-1", "versionID": "v-2"}
			handler.DeleteVersion(w, newRequest(http.MethodDelete, "/api/stories/s-1/versions/v-2", nil, params))

			if w.Code != tt.wantStatus {
				t.Errorf("DeleteVersion() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestStoryHandler_SwitchVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockStoryService)
		wantStatus int
	}{
		{
			name: "switch activates version and its latest snapshot",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					SwitchVersion(gomock.Any(), "s-1", service.SwitchVersionRequest{VersionID: "v-2"}).
					Return(&storage.Story{ID: "s-1", ActiveVersionID: strPtr("v-2"), ActiveSnapshotID: strPtr("snap-9")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "version without snapshots refused",
			mockSetup: func(m *mocks.MockStoryService) {
				m.EXPECT().
					SwitchVersion(gomock.Any(), "s-1", gomock.Any()).
					Return(nil, service.ErrNoSnapshotsForVersion)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockStoryService(ctrl)
			tt.mockSetup(mockService)

			handler := NewStoryHandler(mockService)
			w := httptest.NewRecorder()

			body := service.SwitchVersionRequest{VersionID: "v-2"}
			handler.SwitchVersion(w, newRequest(http.MethodPost, "/api/stories/s-1/switch-version", body, map[string]string{"storyID": "s-1"}))

			if w.Code != tt.wantStatus {
				t.Errorf("SwitchVersion() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestStoryHandler_VersionListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockStoryService(ctrl)
	mockService.EXPECT().
		ListVersions(gomock.Any(), "s-1").
		Return([]storage.StoryVersion{{ID: "v-2", Name: "Rewrite"}, {ID: "v-1", Name: "Original"}}, nil)
	mockService.EXPECT().
		ListSnapshots(gomock.Any(), "s-1", "v-1").
		Return([]storage.StorySnapshot{{ID: "snap-1", VersionID: "v-1"}}, nil)

	handler := NewStoryHandler(mockService)

	w := httptest.NewRecorder()
	handler.ListVersions(w, newRequest(http.MethodGet, "/api/stories/s-1/versions", nil, map[string]string{"storyID": "s-1"}))
	if w.Code != http.StatusOK {
		t.Fatalf("ListVersions() status = %v, want %v", w.Code, http.StatusOK)
	}
	var versions []storage.StoryVersion
	if err := json.NewDecoder(w.Body).Decode(&versions); err != nil {
		t.Fatalf("ListVersions() invalid JSON: %v", err)
	}
	if len(versions) != 2 || versions[0].Name != "Rewrite" {
		t.Errorf("ListVersions() = %+v, want newest first", versions)
	}

	w = httptest.NewRecorder()
	params := map[string]string{"storyID": "s-1", "versionID": "v-1"}
	handler.ListSnapshots(w, newRequest(http.MethodGet, "/api/stories/s-1/versions/v-1/snapshots", nil, params))
	if w.Code != http.StatusOK {
		t.Fatalf("ListSnapshots() status = %v, want %v", w.Code, http.StatusOK)
	}
	var snapshots []storage.StorySnapshot
	if err := json.NewDecoder(w.Body).Decode(&snapshots); err != nil {
		t.Fatalf("ListSnapshots() invalid JSON: %v", err)
	}
	if len(snapshots) != 1 || snapshots[0].ID != "snap-1" {
		t.Errorf("ListSnapshots() = %+v, want snap-1", snapshots)
	}
}
