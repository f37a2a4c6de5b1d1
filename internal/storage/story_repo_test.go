package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStoryRepo_InsertAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	repo := NewStoryRepo(db)

	storyID := uuid.New().String()
	err = repo.Insert(context.Background(), InsertStory{
		ID:          storyID,
		UniverseID:  universe.ID,
		Title:       "The Long Night",
		Description: "A winter tale",
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	story, err := repo.GetByID(context.Background(), storyID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if story.Title != "The Long Night" || story.Description != "A winter tale" {
		t.Error("GetByID() result validation failed")
	}
	if story.ContainerID != nil {
		t.Error("ContainerID should be nil for a root story")
	}
	if story.ActiveVersionID != nil || story.ActiveSnapshotID != nil {
		t.Error("active pointers should start unset")
	}
	if story.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", story.WordCount)
	}
	if story.LastEditedAt != nil {
		t.Error("LastEditedAt should start unset")
	}

	if _, err := repo.GetByID(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestStoryRepo_ListByUniverse(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	containerRepo := NewContainerRepo(db)
	container, err := containerRepo.Create(context.Background(), CreateContainer{
		UniverseID: universe.ID, Kind: "collection", Title: "Shorts",
	})
	if err != nil {
		t.Fatalf("Create() container error = %v", err)
	}

	repo := NewStoryRepo(db)

	rootStory := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: rootStory, UniverseID: universe.ID, Title: "Root Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	containedStory := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: containedStory, UniverseID: universe.ID, ContainerID: &container.ID, Title: "Contained Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	all, err := repo.ListByUniverse(context.Background(), universe.ID, nil)
	if err != nil {
		t.Fatalf("ListByUniverse() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListByUniverse() count = %d, want 2", len(all))
	}

	inContainer, err := repo.ListByUniverse(context.Background(), universe.ID, &container.ID)
	if err != nil {
		t.Fatalf("ListByUniverse() error = %v", err)
	}
	if len(inContainer) != 1 || inContainer[0].ID != containedStory {
		t.Error("ListByUniverse() container filter validation failed")
	}
}

func TestStoryRepo_Update(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	containerRepo := NewContainerRepo(db)
	container, err := containerRepo.Create(context.Background(), CreateContainer{
		UniverseID: universe.ID, Kind: "collection", Title: "Shorts",
	})
	if err != nil {
		t.Fatalf("Create() container error = %v", err)
	}

	repo := NewStoryRepo(db)

	storyID := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Old Title",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	newTitle := "New Title"
	story, err := repo.Update(context.Background(), storyID, UpdateStory{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if story.Title != newTitle {
		t.Errorf("Update() title = %q, want %q", story.Title, newTitle)
	}

	// Move into a container.
	story, err = repo.Update(context.Background(), storyID, UpdateStory{
		SetContainer: true, ContainerID: &container.ID,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if story.ContainerID == nil || *story.ContainerID != container.ID {
		t.Error("Update() should move story into container")
	}

	// Move back out to the universe root.
	story, err = repo.Update(context.Background(), storyID, UpdateStory{SetContainer: true})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if story.ContainerID != nil {
		t.Error("Update() should clear container")
	}

	if _, err := repo.Update(context.Background(), "no-such-id", UpdateStory{Title: &newTitle}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStoryRepo_SetActivePointers(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	repo := NewStoryRepo(db)
	versionRepo := NewVersionRepo(db)
	snapshotRepo := NewSnapshotRepo(db)

	storyID := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Pointer Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	version, err := versionRepo.Create(context.Background(), storyID, "Original")
	if err != nil {
		t.Fatalf("Create() version error = %v", err)
	}
	snapshot, err := snapshotRepo.Create(context.Background(), version.ID, "draft text")
	if err != nil {
		t.Fatalf("Create() snapshot error = %v", err)
	}

	if err := repo.SetActivePointers(context.Background(), storyID, version.ID, &snapshot.ID); err != nil {
		t.Fatalf("SetActivePointers() error = %v", err)
	}

	story, err := repo.GetByID(context.Background(), storyID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if story.ActiveVersionID == nil || *story.ActiveVersionID != version.ID {
		t.Error("SetActivePointers() should set active version")
	}
	if story.ActiveSnapshotID == nil || *story.ActiveSnapshotID != snapshot.ID {
		t.Error("SetActivePointers() should set active snapshot")
	}

	// A nil snapshot clears the snapshot half of the pair.
	if err := repo.SetActivePointers(context.Background(), storyID, version.ID, nil); err != nil {
		t.Fatalf("SetActivePointers() error = %v", err)
	}
	story, err = repo.GetByID(context.Background(), storyID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if story.ActiveSnapshotID != nil {
		t.Error("SetActivePointers() should clear active snapshot")
	}

	err = repo.SetActivePointers(context.Background(), "no-such-id", version.ID, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SetActivePointers() error = %v, want ErrNotFound", err)
	}
}

func TestStoryRepo_SetActiveSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	repo := NewStoryRepo(db)
	versionRepo := NewVersionRepo(db)
	snapshotRepo := NewSnapshotRepo(db)

	storyID := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Snapshot Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	version, err := versionRepo.Create(context.Background(), storyID, "Original")
	if err != nil {
		t.Fatalf("Create() version error = %v", err)
	}
	first, err := snapshotRepo.Create(context.Background(), version.ID, "first")
	if err != nil {
		t.Fatalf("Create() snapshot error = %v", err)
	}
	second, err := snapshotRepo.Create(context.Background(), version.ID, "second")
	if err != nil {
		t.Fatalf("Create() snapshot error = %v", err)
	}

	if err := repo.SetActivePointers(context.Background(), storyID, version.ID, &first.ID); err != nil {
		t.Fatalf("SetActivePointers() error = %v", err)
	}
	if err := repo.SetActiveSnapshot(context.Background(), storyID, second.ID); err != nil {
		t.Fatalf("SetActiveSnapshot() error = %v", err)
	}

	story, err := repo.GetByID(context.Background(), storyID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if story.ActiveSnapshotID == nil || *story.ActiveSnapshotID != second.ID {
		t.Error("SetActiveSnapshot() should repoint the active snapshot")
	}
	if story.ActiveVersionID == nil || *story.ActiveVersionID != version.ID {
		t.Error("SetActiveSnapshot() should leave the active version untouched")
	}
}

func TestStoryRepo_SetStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	repo := NewStoryRepo(db)

	storyID := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Stats Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.SetStats(context.Background(), storyID, 1250); err != nil {
		t.Fatalf("SetStats() error = %v", err)
	}

	story, err := repo.GetByID(context.Background(), storyID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if story.WordCount != 1250 {
		t.Errorf("WordCount = %d, want 1250", story.WordCount)
	}
	if story.LastEditedAt == nil {
		t.Fatal("LastEditedAt should be set")
	}
	if time.Since(*story.LastEditedAt) > time.Minute {
		t.Error("LastEditedAt should be recent")
	}
}

func TestStoryRepo_Delete_Cascades(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	universeRepo := NewUniverseRepo(db)
	universe, err := universeRepo.Create(context.Background(), "Test Universe", "")
	if err != nil {
		t.Fatalf("Create() universe error = %v", err)
	}

	repo := NewStoryRepo(db)
	versionRepo := NewVersionRepo(db)
	snapshotRepo := NewSnapshotRepo(db)

	storyID := uuid.New().String()
	if err := repo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Doomed Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	version, err := versionRepo.Create(context.Background(), storyID, "Original")
	if err != nil {
		t.Fatalf("Create() version error = %v", err)
	}
	snapshot, err := snapshotRepo.Create(context.Background(), version.ID, "text")
	if err != nil {
		t.Fatalf("Create() snapshot error = %v", err)
	}

	if err := repo.Delete(context.Background(), storyID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(context.Background(), storyID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() story after delete error = %v, want ErrNotFound", err)
	}
	if _, err := versionRepo.GetByID(context.Background(), version.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() version after delete error = %v, want ErrNotFound", err)
	}
	if _, err := snapshotRepo.GetByID(context.Background(), snapshot.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() snapshot after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(context.Background(), storyID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
