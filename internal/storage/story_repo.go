package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// StoryRepo provides methods for story row operations. The versioning
// ledger itself lives in VersionRepo and SnapshotRepo; this repo owns the
// story row, including its active version/snapshot pointer pair.
type StoryRepo struct {
	db DBTX
}

// NewStoryRepo creates a new StoryRepo.
func NewStoryRepo(db *sql.DB) *StoryRepo {
	return &StoryRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *StoryRepo) WithTx(tx *sql.Tx) *StoryRepo {
	return &StoryRepo{db: tx}
}

// InsertStory holds the inputs for a story insert. The row starts without
// active pointers; the caller wires them in the same transaction once the
// initial version and snapshot exist.
type InsertStory struct {
	ID               string
	UniverseID       string
	ContainerID      *string
	Title            string
	Description      string
	VariationGroupID *string
}

// Insert writes a new story row.
func (r *StoryRepo) Insert(ctx context.Context, in InsertStory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stories (id, universe_id, container_id, title, description, variation_group_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.ID, in.UniverseID, in.ContainerID, in.Title, in.Description, in.VariationGroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert story: %w", err)
	}
	return nil
}

// GetByID gets a story by its ID. Returns ErrNotFound if not found.
func (r *StoryRepo) GetByID(ctx context.Context, id string) (*Story, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, universe_id, container_id, title, description, variation_group_id,
		        active_version_id, active_snapshot_id, word_count, last_edited_at, created_at, updated_at
		 FROM stories WHERE id = ?`,
		id,
	)
	story, err := scanStory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query story: %w", err)
	}
	return story, nil
}

// ListByUniverse returns a universe's stories ordered by creation time.
// When containerID is non-nil only stories in that container are returned.
func (r *StoryRepo) ListByUniverse(ctx context.Context, universeID string, containerID *string) ([]Story, error) {
	query := `SELECT id, universe_id, container_id, title, description, variation_group_id,
	                 active_version_id, active_snapshot_id, word_count, last_edited_at, created_at, updated_at
	          FROM stories WHERE universe_id = ?`
	args := []any{universeID}
	if containerID != nil {
		query += " AND container_id = ?"
		args = append(args, *containerID)
	}
	query += " ORDER BY created_at, rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var stories []Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan story: %w", err)
		}
		stories = append(stories, *story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return stories, nil
}

// UpdateStory holds the sparse fields of a story update. ContainerID moves
// the story into another container; SetContainer with a nil ContainerID
// moves it to the universe root.
type UpdateStory struct {
	Title        *string
	Description  *string
	SetContainer bool
	ContainerID  *string
}

// Update applies the provided fields to a story and returns the updated
// row. Returns ErrNotFound when the story does not exist.
func (r *StoryRepo) Update(ctx context.Context, id string, in UpdateStory) (*Story, error) {
	set := "updated_at = CURRENT_TIMESTAMP"
	args := []any{}
	if in.Title != nil {
		set += ", title = ?"
		args = append(args, *in.Title)
	}
	if in.Description != nil {
		set += ", description = ?"
		args = append(args, *in.Description)
	}
	if in.SetContainer {
		set += ", container_id = ?"
		args = append(args, in.ContainerID)
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, "UPDATE stories SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update story: %w", err)
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

// SetActivePointers repoints the story's active version and snapshot in one
// statement so the pair can never be observed half-updated. snapshotID may
// be nil only in the degenerate failover case where the surviving version
// has no snapshots; the pointer is then cleared rather than left dangling.
func (r *StoryRepo) SetActivePointers(ctx context.Context, storyID, versionID string, snapshotID *string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE stories SET active_version_id = ?, active_snapshot_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		versionID, snapshotID, storyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update active pointers: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActiveSnapshot repoints only the active snapshot; the caller has
// already verified it belongs to the story's active version.
func (r *StoryRepo) SetActiveSnapshot(ctx context.Context, storyID, snapshotID string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE stories SET active_snapshot_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		snapshotID, storyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update active snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStats stores the recomputed word count and stamps last_edited_at.
func (r *StoryRepo) SetStats(ctx context.Context, storyID string, wordCount int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE stories SET word_count = ?, last_edited_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		wordCount, storyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update story stats: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a story; its versions and snapshots go with it by cascade.
// Returns ErrNotFound when the story does not exist.
func (r *StoryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanStory(row rowScanner) (*Story, error) {
	var story Story
	var containerID, variationGroupID, activeVersionID, activeSnapshotID, lastEditedAt sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&story.ID, &story.UniverseID, &containerID, &story.Title, &story.Description,
		&variationGroupID, &activeVersionID, &activeSnapshotID, &story.WordCount,
		&lastEditedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if containerID.Valid {
		story.ContainerID = &containerID.String
	}
	if variationGroupID.Valid {
		story.VariationGroupID = &variationGroupID.String
	}
	if activeVersionID.Valid {
		story.ActiveVersionID = &activeVersionID.String
	}
	if activeSnapshotID.Valid {
		story.ActiveSnapshotID = &activeSnapshotID.String
	}
	if story.LastEditedAt, err = parseNullTimestamp(lastEditedAt); err != nil {
		return nil, err
	}
	if story.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if story.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &story, nil
}
