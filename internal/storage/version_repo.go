package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// VersionRepo provides methods for story version operations.
type VersionRepo struct {
	db DBTX
}

// NewVersionRepo creates a new VersionRepo.
func NewVersionRepo(db *sql.DB) *VersionRepo {
	return &VersionRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *VersionRepo) WithTx(tx *sql.Tx) *VersionRepo {
	return &VersionRepo{db: tx}
}

// Create writes a new version for a story and returns it.
func (r *VersionRepo) Create(ctx context.Context, storyID, name string) (*StoryVersion, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO story_versions (id, story_id, name) VALUES (?, ?, ?)",
		id, storyID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert version: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID gets a version by its ID. Returns ErrNotFound if not found.
func (r *VersionRepo) GetByID(ctx context.Context, id string) (*StoryVersion, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, story_id, name, created_at FROM story_versions WHERE id = ?",
		id,
	)
	version, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query version: %w", err)
	}
	return version, nil
}

// ListByStory returns a story's versions in creation order, oldest first.
func (r *VersionRepo) ListByStory(ctx context.Context, storyID string) ([]StoryVersion, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, story_id, name, created_at FROM story_versions WHERE story_id = ? ORDER BY created_at, rowid",
		storyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var versions []StoryVersion
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, *version)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return versions, nil
}

// CountByStory counts a story's versions.
func (r *VersionRepo) CountByStory(ctx context.Context, storyID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM story_versions WHERE story_id = ?",
		storyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count versions: %w", err)
	}
	return count, nil
}

// Rename updates a version's name and returns the updated row. Returns
// ErrNotFound when the version does not exist.
func (r *VersionRepo) Rename(ctx context.Context, id, name string) (*StoryVersion, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE story_versions SET name = ? WHERE id = ?",
		name, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rename version: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a version and, by cascade, its snapshots. A story must
// keep at least one version, so deleting the only remaining one returns
// ErrLastVersion. Callers run this inside a transaction together with any
// active pointer repair.
func (r *VersionRepo) Delete(ctx context.Context, id string) error {
	version, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	count, err := r.CountByStory(ctx, version.StoryID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastVersion
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM story_versions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete version: %w", err)
	}
	return nil
}

// LatestRemaining returns the most recently created version of a story
// other than excludeID. Returns ErrNotFound when no such version exists.
func (r *VersionRepo) LatestRemaining(ctx context.Context, storyID, excludeID string) (*StoryVersion, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, story_id, name, created_at FROM story_versions
		 WHERE story_id = ? AND id != ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		storyID, excludeID,
	)
	version, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query version: %w", err)
	}
	return version, nil
}

func scanVersion(row rowScanner) (*StoryVersion, error) {
	var version StoryVersion
	var createdAt string
	if err := row.Scan(&version.ID, &version.StoryID, &version.Name, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if version.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &version, nil
}
