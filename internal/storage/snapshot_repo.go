package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SnapshotRepo provides methods for story snapshot operations.
type SnapshotRepo struct {
	db DBTX
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *SnapshotRepo) WithTx(tx *sql.Tx) *SnapshotRepo {
	return &SnapshotRepo{db: tx}
}

// Create writes a new snapshot for a version and returns it.
func (r *SnapshotRepo) Create(ctx context.Context, versionID, content string) (*StorySnapshot, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO story_snapshots (id, version_id, content) VALUES (?, ?, ?)",
		id, versionID, content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID gets a snapshot by its ID. Returns ErrNotFound if not found.
func (r *SnapshotRepo) GetByID(ctx context.Context, id string) (*StorySnapshot, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, version_id, content, created_at FROM story_snapshots WHERE id = ?",
		id,
	)
	snapshot, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return snapshot, nil
}

// Latest returns a version's most recent snapshot, or ErrNotFound when the
// version has none. Rows created within the same DATETIME second fall back
// to insertion order.
func (r *SnapshotRepo) Latest(ctx context.Context, versionID string) (*StorySnapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, version_id, content, created_at FROM story_snapshots
		 WHERE version_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		versionID,
	)
	snapshot, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return snapshot, nil
}

// ListByVersion returns a version's snapshots, newest first.
func (r *SnapshotRepo) ListByVersion(ctx context.Context, versionID string) ([]StorySnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, version_id, content, created_at FROM story_snapshots
		 WHERE version_id = ? ORDER BY created_at DESC, rowid DESC`,
		versionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var snapshots []StorySnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return snapshots, nil
}

// UpdateContent replaces a snapshot's content in place. Returns ErrNotFound
// when the snapshot does not exist.
func (r *SnapshotRepo) UpdateContent(ctx context.Context, id, content string) (*StorySnapshot, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE story_snapshots SET content = ? WHERE id = ?",
		content, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update snapshot: %w", err)
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

// DeleteOldest trims a version's snapshot history down to the keep most
// recent entries and reports how many rows were removed. A negative keep
// disables trimming; keep zero clears the history.
func (r *SnapshotRepo) DeleteOldest(ctx context.Context, versionID string, keep int) (int, error) {
	if keep < 0 {
		return 0, nil
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM story_snapshots
		 WHERE version_id = ? AND id NOT IN (
		     SELECT id FROM story_snapshots WHERE version_id = ?
		     ORDER BY created_at DESC, rowid DESC LIMIT ?
		 )`,
		versionID, versionID, keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshots: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(affected), nil
}

func scanSnapshot(row rowScanner) (*StorySnapshot, error) {
	var snapshot StorySnapshot
	var createdAt string
	if err := row.Scan(&snapshot.ID, &snapshot.VersionID, &snapshot.Content, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if snapshot.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
