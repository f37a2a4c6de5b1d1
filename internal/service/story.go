package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_story_service.go -package=mocks -mock_names=StoryService=MockStoryService storyloom/internal/service StoryService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"storyloom/internal/contextutil"
	"storyloom/internal/storage"
	"storyloom/internal/wordcount"
)

// initialVersionName is the name of the version every story starts with.
const initialVersionName = "Original"

// CreateStoryRequest holds the inputs for creating a story.
type CreateStoryRequest struct {
	UniverseID       string  `json:"universe_id" validate:"required"`
	ContainerID      *string `json:"container_id" validate:"omitempty,min=1"`
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description"`
	VariationGroupID *string `json:"variation_group_id" validate:"omitempty,min=1"`
}

// UpdateStoryRequest holds the sparse fields of a story update. SetContainer
// with a nil ContainerID moves the story to the universe root.
type UpdateStoryRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	SetContainer bool    `json:"-"`
	ContainerID  *string `json:"container_id"`
}

// CreateSnapshotRequest carries the content of a new save-point.
type CreateSnapshotRequest struct {
	Content string `json:"content"`
}

// UpdateSnapshotContentRequest carries replacement content for an existing
// snapshot (the autosave path).
type UpdateSnapshotContentRequest struct {
	Content string `json:"content"`
}

// SwitchSnapshotRequest names the snapshot to activate.
type SwitchSnapshotRequest struct {
	SnapshotID string `json:"snapshot_id" validate:"required"`
}

// SwitchVersionRequest names the version to activate.
type SwitchVersionRequest struct {
	VersionID string `json:"version_id" validate:"required"`
}

// CleanupSnapshotsRequest carries the retention bound for an explicit trim.
type CleanupSnapshotsRequest struct {
	KeepCount int `json:"keep_count" validate:"gte=0"`
}

// CreateVersionRequest holds the inputs for creating a story version.
type CreateVersionRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// RenameVersionRequest holds the new name of a version.
type RenameVersionRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// StoryService provides story CRUD and the versioning lifecycle: every
// operation that touches a story's active version/snapshot pointer pair
// lives here, so the pair is only ever mutated through named transitions.
type StoryService interface {
	CreateStory(ctx context.Context, req CreateStoryRequest) (*storage.Story, error)
	GetStory(ctx context.Context, id string) (*storage.Story, error)
	ListStories(ctx context.Context, universeID string, containerID *string) ([]storage.Story, error)
	UpdateStory(ctx context.Context, id string, req UpdateStoryRequest) (*storage.Story, error)
	DeleteStory(ctx context.Context, id string) error

	CreateSnapshot(ctx context.Context, storyID string, req CreateSnapshotRequest) (*storage.StorySnapshot, error)
	UpdateSnapshotContent(ctx context.Context, snapshotID string, req UpdateSnapshotContentRequest) (*storage.StorySnapshot, error)
	SwitchSnapshot(ctx context.Context, storyID string, req SwitchSnapshotRequest) (*storage.Story, error)
	CleanupSnapshots(ctx context.Context, storyID string, req CleanupSnapshotsRequest) (int, error)

	CreateVersion(ctx context.Context, storyID string, req CreateVersionRequest) (*storage.StoryVersion, error)
	ListVersions(ctx context.Context, storyID string) ([]storage.StoryVersion, error)
	ListSnapshots(ctx context.Context, storyID, versionID string) ([]storage.StorySnapshot, error)
	RenameVersion(ctx context.Context, storyID, versionID string, req RenameVersionRequest) (*storage.StoryVersion, error)
	DeleteVersion(ctx context.Context, storyID, versionID string) (*storage.Story, error)
	SwitchVersion(ctx context.Context, storyID string, req SwitchVersionRequest) (*storage.Story, error)
}

// StoryServiceParams bundles the collaborators of the story orchestrator.
type StoryServiceParams struct {
	DB         *sql.DB
	Universes  *storage.UniverseRepo
	Containers *storage.ContainerRepo
	Stories    *storage.StoryRepo
	Versions   *storage.VersionRepo
	Snapshots  *storage.SnapshotRepo
	Counter    *wordcount.Counter
	// KeepCount bounds the active version's history after every new snapshot.
	KeepCount int
}

// storyService implements StoryService.
type storyService struct {
	db         *sql.DB
	universes  *storage.UniverseRepo
	containers *storage.ContainerRepo
	stories    *storage.StoryRepo
	versions   *storage.VersionRepo
	snapshots  *storage.SnapshotRepo
	counter    *wordcount.Counter
	keepCount  int
}

// NewStoryService creates a new StoryService.
func NewStoryService(p StoryServiceParams) StoryService {
	return &storyService{
		db:         p.DB,
		universes:  p.Universes,
		containers: p.Containers,
		stories:    p.Stories,
		versions:   p.Versions,
		snapshots:  p.Snapshots,
		counter:    p.Counter,
		keepCount:  p.KeepCount,
	}
}

// CreateStory initializes a story as one atomic unit: the row, an "Original"
// version, one empty snapshot, and the active pointer pair. A failure at any
// step leaves no trace.
func (s *storyService) CreateStory(ctx context.Context, req CreateStoryRequest) (*storage.Story, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid story input", "error", err)
		return nil, err
	}

	if _, err := s.universes.GetByID(ctx, req.UniverseID); err != nil {
		return nil, asNotFound(err, "universe", req.UniverseID)
	}
	if req.ContainerID != nil {
		container, err := s.containers.GetByID(ctx, *req.ContainerID)
		if err != nil {
			return nil, asNotFound(err, "container", *req.ContainerID)
		}
		if container.UniverseID != req.UniverseID {
			return nil, fmt.Errorf("container %s is in another universe: %w", container.ID, ErrOwnershipMismatch)
		}
	}

	var story *storage.Story
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)

		id := uuid.New().String()
		err := stories.Insert(ctx, storage.InsertStory{
			ID:               id,
			UniverseID:       req.UniverseID,
			ContainerID:      req.ContainerID,
			Title:            req.Title,
			Description:      req.Description,
			VariationGroupID: req.VariationGroupID,
		})
		if err != nil {
			return err
		}

		version, err := s.versions.WithTx(tx).Create(ctx, id, initialVersionName)
		if err != nil {
			return err
		}
		snapshot, err := s.snapshots.WithTx(tx).Create(ctx, version.ID, "")
		if err != nil {
			return err
		}
		if err := stories.SetActivePointers(ctx, id, version.ID, &snapshot.ID); err != nil {
			return err
		}

		story, err = stories.GetByID(ctx, id)
		return err
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create story", "error", err)
		return nil, WrapError(err, "failed to create story")
	}

	logger.InfoContext(ctx, "story created", "story_id", story.ID, "universe_id", story.UniverseID)
	return story, nil
}

// GetStory returns a story by id.
func (s *storyService) GetStory(ctx context.Context, id string) (*storage.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "story", id)
	}
	return story, nil
}

// ListStories returns a universe's stories, optionally only those in one
// container.
func (s *storyService) ListStories(ctx context.Context, universeID string, containerID *string) ([]storage.Story, error) {
	if _, err := s.universes.GetByID(ctx, universeID); err != nil {
		return nil, asNotFound(err, "universe", universeID)
	}
	return s.stories.ListByUniverse(ctx, universeID, containerID)
}

// UpdateStory applies a sparse update; a container move verifies the target
// exists and belongs to the story's universe.
func (s *storyService) UpdateStory(ctx context.Context, id string, req UpdateStoryRequest) (*storage.Story, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid story input", "error", err)
		return nil, err
	}

	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "story", id)
	}
	if req.SetContainer && req.ContainerID != nil {
		container, err := s.containers.GetByID(ctx, *req.ContainerID)
		if err != nil {
			return nil, asNotFound(err, "container", *req.ContainerID)
		}
		if container.UniverseID != story.UniverseID {
			return nil, fmt.Errorf("container %s is in another universe: %w", container.ID, ErrOwnershipMismatch)
		}
	}

	updated, err := s.stories.Update(ctx, id, storage.UpdateStory{
		Title:        req.Title,
		Description:  req.Description,
		SetContainer: req.SetContainer,
		ContainerID:  req.ContainerID,
	})
	if err != nil {
		return nil, asNotFound(err, "story", id)
	}
	return updated, nil
}

// DeleteStory removes a story; versions and snapshots go by cascade.
func (s *storyService) DeleteStory(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.stories.Delete(ctx, id); err != nil {
		return asNotFound(err, "story", id)
	}

	logger.InfoContext(ctx, "story deleted", "story_id", id)
	return nil
}

// CreateSnapshot adds a save-point to the story's active version, repoints
// the active snapshot, refreshes the story's word count and last-edited
// stamp, then trims the version's history to the configured keep count.
// Retention runs after the pointer update so the new snapshot is never
// itself evicted.
func (s *storyService) CreateSnapshot(ctx context.Context, storyID string, req CreateSnapshotRequest) (*storage.StorySnapshot, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var snapshot *storage.StorySnapshot
	var trimmed int
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)
		snapshots := s.snapshots.WithTx(tx)

		story, err := stories.GetByID(ctx, storyID)
		if err != nil {
			return asNotFound(err, "story", storyID)
		}
		if story.ActiveVersionID == nil {
			return fmt.Errorf("story %s has no active version", storyID)
		}

		snapshot, err = snapshots.Create(ctx, *story.ActiveVersionID, req.Content)
		if err != nil {
			return err
		}
		if err := stories.SetActiveSnapshot(ctx, storyID, snapshot.ID); err != nil {
			return err
		}
		if err := stories.SetStats(ctx, storyID, s.counter.Count(req.Content)); err != nil {
			return err
		}

		trimmed, err = snapshots.DeleteOldest(ctx, *story.ActiveVersionID, s.keepCount)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "snapshot created",
		"story_id", storyID, "snapshot_id", snapshot.ID, "trimmed", trimmed)
	return snapshot, nil
}

// UpdateSnapshotContent replaces a snapshot's content in place without
// creating a new row (the autosave path).
func (s *storyService) UpdateSnapshotContent(ctx context.Context, snapshotID string, req UpdateSnapshotContentRequest) (*storage.StorySnapshot, error) {
	snapshot, err := s.snapshots.UpdateContent(ctx, snapshotID, req.Content)
	if err != nil {
		return nil, asNotFound(err, "snapshot", snapshotID)
	}
	return snapshot, nil
}

// SwitchSnapshot repoints the story's active snapshot. The target must
// belong to the story's active version; cross-version switches are
// rejected.
func (s *storyService) SwitchSnapshot(ctx context.Context, storyID string, req SwitchSnapshotRequest) (*storage.Story, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid switch input", "error", err)
		return nil, err
	}

	var story *storage.Story
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)

		current, err := stories.GetByID(ctx, storyID)
		if err != nil {
			return asNotFound(err, "story", storyID)
		}
		snapshot, err := s.snapshots.WithTx(tx).GetByID(ctx, req.SnapshotID)
		if err != nil {
			return asNotFound(err, "snapshot", req.SnapshotID)
		}
		if current.ActiveVersionID == nil || snapshot.VersionID != *current.ActiveVersionID {
			return fmt.Errorf("snapshot %s is not in the story's active version: %w", snapshot.ID, ErrOwnershipMismatch)
		}

		if err := stories.SetActiveSnapshot(ctx, storyID, snapshot.ID); err != nil {
			return err
		}
		story, err = stories.GetByID(ctx, storyID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "snapshot switched", "story_id", storyID, "snapshot_id", req.SnapshotID)
	return story, nil
}

// CleanupSnapshots trims the active version's history to keepCount entries
// and reports how many were removed. If the active snapshot itself is
// evicted, the pointer is repaired to the latest survivor, or cleared when
// none remain.
func (s *storyService) CleanupSnapshots(ctx context.Context, storyID string, req CleanupSnapshotsRequest) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid cleanup input", "error", err)
		return 0, err
	}

	var deleted int
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)
		snapshots := s.snapshots.WithTx(tx)

		story, err := stories.GetByID(ctx, storyID)
		if err != nil {
			return asNotFound(err, "story", storyID)
		}
		if story.ActiveVersionID == nil {
			return fmt.Errorf("story %s has no active version", storyID)
		}

		deleted, err = snapshots.DeleteOldest(ctx, *story.ActiveVersionID, req.KeepCount)
		if err != nil {
			return err
		}
		if deleted == 0 || story.ActiveSnapshotID == nil {
			return nil
		}

		// Repair the pointer when the trim took the active snapshot with it.
		if _, err := snapshots.GetByID(ctx, *story.ActiveSnapshotID); err == nil {
			return nil
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		latest, err := snapshots.Latest(ctx, *story.ActiveVersionID)
		if errors.Is(err, storage.ErrNotFound) {
			return stories.SetActivePointers(ctx, storyID, *story.ActiveVersionID, nil)
		}
		if err != nil {
			return err
		}
		return stories.SetActivePointers(ctx, storyID, *story.ActiveVersionID, &latest.ID)
	})
	if err != nil {
		return 0, err
	}

	logger.InfoContext(ctx, "snapshots trimmed",
		"story_id", storyID, "keep", req.KeepCount, "deleted", deleted)
	return deleted, nil
}

// CreateVersion adds a named version to a story, seeded with one snapshot
// copying the story's current active content so the new branch starts
// usable. The story's active pointers are left untouched.
func (s *storyService) CreateVersion(ctx context.Context, storyID string, req CreateVersionRequest) (*storage.StoryVersion, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid version input", "error", err)
		return nil, err
	}

	var version *storage.StoryVersion
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		snapshots := s.snapshots.WithTx(tx)

		story, err := s.stories.WithTx(tx).GetByID(ctx, storyID)
		if err != nil {
			return asNotFound(err, "story", storyID)
		}

		content := ""
		if story.ActiveSnapshotID != nil {
			active, err := snapshots.GetByID(ctx, *story.ActiveSnapshotID)
			if err != nil {
				return err
			}
			content = active.Content
		}

		version, err = s.versions.WithTx(tx).Create(ctx, storyID, req.Name)
		if err != nil {
			return err
		}
		_, err = snapshots.Create(ctx, version.ID, content)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "version created",
		"story_id", storyID, "version_id", version.ID, "name", version.Name)
	return version, nil
}

// ListVersions returns a story's versions in creation order.
func (s *storyService) ListVersions(ctx context.Context, storyID string) ([]storage.StoryVersion, error) {
	if _, err := s.stories.GetByID(ctx, storyID); err != nil {
		return nil, asNotFound(err, "story", storyID)
	}
	return s.versions.ListByStory(ctx, storyID)
}

// ListSnapshots returns a version's snapshots newest-first. The version
// must belong to the story.
func (s *storyService) ListSnapshots(ctx context.Context, storyID, versionID string) ([]storage.StorySnapshot, error) {
	version, err := s.versions.GetByID(ctx, versionID)
	if err != nil {
		return nil, asNotFound(err, "version", versionID)
	}
	if version.StoryID != storyID {
		return nil, fmt.Errorf("version %s does not belong to story %s: %w", versionID, storyID, ErrOwnershipMismatch)
	}
	return s.snapshots.ListByVersion(ctx, versionID)
}

// RenameVersion renames a version after verifying it belongs to the story.
func (s *storyService) RenameVersion(ctx context.Context, storyID, versionID string, req RenameVersionRequest) (*storage.StoryVersion, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid version input", "error", err)
		return nil, err
	}

	version, err := s.versions.GetByID(ctx, versionID)
	if err != nil {
		return nil, asNotFound(err, "version", versionID)
	}
	if version.StoryID != storyID {
		return nil, fmt.Errorf("version %s does not belong to story %s: %w", versionID, storyID, ErrOwnershipMismatch)
	}

	renamed, err := s.versions.Rename(ctx, versionID, req.Name)
	if err != nil {
		return nil, asNotFound(err, "version", versionID)
	}
	return renamed, nil
}

// DeleteVersion removes a version and its snapshots, refusing to remove a
// story's only version. Deleting the active version fails over to the most
// recently created survivor: the story's pointers are repointed before the
// delete so they are never left dangling, with the snapshot pointer cleared
// if the survivor has no snapshots.
func (s *storyService) DeleteVersion(ctx context.Context, storyID, versionID string) (*storage.Story, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var story *storage.Story
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)
		versions := s.versions.WithTx(tx)
		snapshots := s.snapshots.WithTx(tx)

		current, err := stories.GetByID(ctx, storyID)
		if err != nil {
			return asNotFound(err, "story", storyID)
		}
		version, err := versions.GetByID(ctx, versionID)
		if err != nil {
			return asNotFound(err, "version", versionID)
		}
		if version.StoryID != storyID {
			return fmt.Errorf("version %s does not belong to story %s: %w", versionID, storyID, ErrOwnershipMismatch)
		}

		if current.ActiveVersionID != nil && *current.ActiveVersionID == versionID {
			replacement, err := versions.LatestRemaining(ctx, storyID, versionID)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("version %s is the story's only version: %w", versionID, storage.ErrLastVersion)
			}
			if err != nil {
				return err
			}

			latest, err := snapshots.Latest(ctx, replacement.ID)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				// Survivor has an empty history; clear rather than dangle.
				err = stories.SetActivePointers(ctx, storyID, replacement.ID, nil)
			case err == nil:
				err = stories.SetActivePointers(ctx, storyID, replacement.ID, &latest.ID)
			}
			if err != nil {
				return err
			}
		}

		if err := versions.Delete(ctx, versionID); err != nil {
			return err
		}
		story, err = stories.GetByID(ctx, storyID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "version deleted", "story_id", storyID, "version_id", versionID)
	return story, nil
}

// SwitchVersion repoints the story to another of its versions and activates
// that version's latest snapshot. A version with no snapshots cannot be
// switched to.
func (s *storyService) SwitchVersion(ctx context.Context, storyID string, req SwitchVersionRequest) (*storage.Story, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid switch input", "error", err)
		return nil, err
	}

	var story *storage.Story
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		stories := s.stories.WithTx(tx)

		if _, err := stories.GetByID(ctx, storyID); err != nil {
			return asNotFound(err, "story", storyID)
		}
		version, err := s.versions.WithTx(tx).GetByID(ctx, req.VersionID)
		if err != nil {
			return asNotFound(err, "version", req.VersionID)
		}
		if version.StoryID != storyID {
			return fmt.Errorf("version %s does not belong to story %s: %w", req.VersionID, storyID, ErrOwnershipMismatch)
		}

		latest, err := s.snapshots.WithTx(tx).Latest(ctx, version.ID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("version %s: %w", version.ID, ErrNoSnapshotsForVersion)
		}
		if err != nil {
			return err
		}

		if err := stories.SetActivePointers(ctx, storyID, version.ID, &latest.ID); err != nil {
			return err
		}
		story, err = stories.GetByID(ctx, storyID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "version switched", "story_id", storyID, "version_id", req.VersionID)
	return story, nil
}
