package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestVersionRepo_CreateAndList(t *testing.T) {
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

	storyRepo := NewStoryRepo(db)
	storyID := uuid.New().String()
	if err := storyRepo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Versioned Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	repo := NewVersionRepo(db)

	names := []string{"Original", "Dark Ending", "Epilogue Cut"}
	for _, name := range names {
		version, err := repo.Create(context.Background(), storyID, name)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if version.Name != name || version.StoryID != storyID {
			t.Error("Create() result validation failed")
		}
		if len(version.ID) != 36 {
			t.Errorf("Create() generated ID length = %d, want 36", len(version.ID))
		}
	}

	versions, err := repo.ListByStory(context.Background(), storyID)
	if err != nil {
		t.Fatalf("ListByStory() error = %v", err)
	}
	if len(versions) != len(names) {
		t.Fatalf("ListByStory() count = %d, want %d", len(versions), len(names))
	}
	// Oldest first
	for i, version := range versions {
		if version.Name != names[i] {
			t.Errorf("ListByStory()[%d].Name = %q, want %q", i, version.Name, names[i])
		}
	}

	count, err := repo.CountByStory(context.Background(), storyID)
	if err != nil {
		t.Fatalf("CountByStory() error = %v", err)
	}
	if count != len(names) {
		t.Errorf("CountByStory() = %d, want %d", count, len(names))
	}
}

func TestVersionRepo_Rename(t *testing.T) {
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

	storyRepo := NewStoryRepo(db)
	storyID := uuid.New().String()
	if err := storyRepo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	repo := NewVersionRepo(db)

	version, err := repo.Create(context.Background(), storyID, "Draft")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	renamed, err := repo.Rename(context.Background(), version.ID, "Final Draft")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if renamed.Name != "Final Draft" {
		t.Errorf("Rename() name = %q, want %q", renamed.Name, "Final Draft")
	}

	if _, err := repo.Rename(context.Background(), "no-such-id", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename() error = %v, want ErrNotFound", err)
	}
}

func TestVersionRepo_Delete(t *testing.T) {
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

	storyRepo := NewStoryRepo(db)
	storyID := uuid.New().String()
	if err := storyRepo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	repo := NewVersionRepo(db)
	snapshotRepo := NewSnapshotRepo(db)

	only, err := repo.Create(context.Background(), storyID, "Original")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The sole version of a story may not be removed.
	if err := repo.Delete(context.Background(), only.ID); !errors.Is(err, ErrLastVersion) {
		t.Errorf("Delete() error = %v, want ErrLastVersion", err)
	}

	second, err := repo.Create(context.Background(), storyID, "Alternate")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	snapshot, err := snapshotRepo.Create(context.Background(), second.ID, "text")
	if err != nil {
		t.Fatalf("Create() snapshot error = %v", err)
	}

	if err := repo.Delete(context.Background(), second.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(context.Background(), second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := snapshotRepo.GetByID(context.Background(), snapshot.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() snapshot after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestVersionRepo_LatestRemaining(t *testing.T) {
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

	storyRepo := NewStoryRepo(db)
	storyID := uuid.New().String()
	if err := storyRepo.Insert(context.Background(), InsertStory{
		ID: storyID, UniverseID: universe.ID, Title: "Story",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	repo := NewVersionRepo(db)

	first, err := repo.Create(context.Background(), storyID, "First")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := repo.Create(context.Background(), storyID, "Second")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	third, err := repo.Create(context.Background(), storyID, "Third")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Excluding the newest falls back to the next most recent.
	remaining, err := repo.LatestRemaining(context.Background(), storyID, third.ID)
	if err != nil {
		t.Fatalf("LatestRemaining() error = %v", err)
	}
	if remaining.ID != second.ID {
		t.Errorf("LatestRemaining() = %q, want %q", remaining.Name, second.Name)
	}

	// Excluding an older version keeps the newest.
	remaining, err = repo.LatestRemaining(context.Background(), storyID, first.ID)
	if err != nil {
		t.Fatalf("LatestRemaining() error = %v", err)
	}
	if remaining.ID != third.ID {
		t.Errorf("LatestRemaining() = %q, want %q", remaining.Name, third.Name)
	}

	// A story with nothing left besides the excluded version has no fallback.
	otherStory := uuid.New().String()
	if err := storyRepo.Insert(context.Background(), InsertStory{
		ID: otherStory, UniverseID: universe.ID, Title: "Other",
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	lone, err := repo.Create(context.Background(), otherStory, "Only")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.LatestRemaining(context.Background(), otherStory, lone.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("LatestRemaining() error = %v, want ErrNotFound", err)
	}
}
