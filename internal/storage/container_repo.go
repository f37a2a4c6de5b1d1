package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// MaxContainerDepth is the number of nesting levels a hierarchy may use.
// Roots sit at depth 0, so the deepest legal container is at depth 9;
// creating one at depth 10 fails with ErrMaxDepthExceeded.
const MaxContainerDepth = 10

// CreateContainer holds the inputs for a container insert.
type CreateContainer struct {
	UniverseID  string
	ParentID    *string
	Kind        string
	Title       string
	Description string
	SortOrder   int
}

// UpdateContainer holds the sparse fields of a container update; nil fields
// are left untouched.
type UpdateContainer struct {
	Kind        *string
	Title       *string
	Description *string
	SortOrder   *int
}

// ContainerRepo provides methods for container hierarchy operations.
type ContainerRepo struct {
	db DBTX
}

// NewContainerRepo creates a new ContainerRepo.
func NewContainerRepo(db *sql.DB) *ContainerRepo {
	return &ContainerRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *ContainerRepo) WithTx(tx *sql.Tx) *ContainerRepo {
	return &ContainerRepo{db: tx}
}

// Create inserts a new container after checking the structural invariants:
// the parent (when set) must exist, belong to the same universe, own no
// stories, and sit shallow enough that the child stays within
// MaxContainerDepth levels.
func (r *ContainerRepo) Create(ctx context.Context, in CreateContainer) (*Container, error) {
	if in.ParentID != nil {
		parent, err := r.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent container: %w", err)
		}
		if parent.UniverseID != in.UniverseID {
			return nil, fmt.Errorf("parent container %s is in another universe: %w", parent.ID, ErrOwnershipMismatch)
		}

		// Leaf protection: a container holding stories stays a leaf.
		stories, err := r.CountStories(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		if stories > 0 {
			return nil, fmt.Errorf("container %s owns %d stories: %w", parent.ID, stories, ErrLeafProtection)
		}

		depth, err := r.Depth(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		if depth+1 >= MaxContainerDepth {
			return nil, fmt.Errorf("container would sit at depth %d: %w", depth+1, ErrMaxDepthExceeded)
		}
	}

	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO containers (id, universe_id, parent_container_id, kind, title, description, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, in.UniverseID, in.ParentID, in.Kind, in.Title, in.Description, in.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert container: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID gets a container by its ID. Returns ErrNotFound if not found.
func (r *ContainerRepo) GetByID(ctx context.Context, id string) (*Container, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at
		 FROM containers WHERE id = ?`,
		id,
	)
	container, err := scanContainer(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query container: %w", err)
	}
	return container, nil
}

// ListByUniverse returns all containers of a universe ordered by sibling
// order, then creation time.
func (r *ContainerRepo) ListByUniverse(ctx context.Context, universeID string) ([]Container, error) {
	return r.list(ctx,
		`SELECT id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at
		 FROM containers WHERE universe_id = ? ORDER BY sort_order, created_at, rowid`,
		universeID,
	)
}

// ListChildren returns the direct children of a container ordered by sibling
// order, then creation time.
func (r *ContainerRepo) ListChildren(ctx context.Context, parentID string) ([]Container, error) {
	return r.list(ctx,
		`SELECT id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at
		 FROM containers WHERE parent_container_id = ? ORDER BY sort_order, created_at, rowid`,
		parentID,
	)
}

func (r *ContainerRepo) list(ctx context.Context, query string, args ...any) ([]Container, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query containers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var containers []Container
	for rows.Next() {
		container, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan container: %w", err)
		}
		containers = append(containers, *container)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return containers, nil
}

// Depth returns the distance of a container from its root: 0 for roots,
// parent depth + 1 otherwise. Computed with a single recursive query
// instead of one round trip per ancestor.
func (r *ContainerRepo) Depth(ctx context.Context, id string) (int, error) {
	var depth sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`WITH RECURSIVE ancestors(parent_id, depth) AS (
			SELECT parent_container_id, 0 FROM containers WHERE id = ?
			UNION ALL
			SELECT c.parent_container_id, a.depth + 1
			FROM containers c JOIN ancestors a ON c.id = a.parent_id
		)
		SELECT MAX(depth) FROM ancestors`,
		id,
	).Scan(&depth)
	if err != nil {
		return 0, fmt.Errorf("failed to query container depth: %w", err)
	}
	if !depth.Valid {
		// The anchor row did not match, so the container does not exist.
		return 0, ErrNotFound
	}
	return int(depth.Int64), nil
}

// Subtree returns the container plus all descendants in breadth-first order
// (depth, then sibling order, then creation time), read in one recursive
// query. maxDepth bounds the recursion relative to the root; negative means
// unbounded. Returns ErrNotFound when the root does not exist.
func (r *ContainerRepo) Subtree(ctx context.Context, rootID string, maxDepth int) ([]Container, error) {
	rows, err := r.db.QueryContext(ctx,
		`WITH RECURSIVE subtree(id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at, rid, depth) AS (
			SELECT id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at, rowid, 0
			FROM containers WHERE id = ?
			UNION ALL
			SELECT c.id, c.universe_id, c.parent_container_id, c.kind, c.title, c.description, c.sort_order, c.created_at, c.updated_at, c.rowid, s.depth + 1
			FROM containers c JOIN subtree s ON c.parent_container_id = s.id
			WHERE ? < 0 OR s.depth + 1 <= ?
		)
		SELECT id, universe_id, parent_container_id, kind, title, description, sort_order, created_at, updated_at, depth
		FROM subtree ORDER BY depth, sort_order, created_at, rid`,
		rootID, maxDepth, maxDepth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query container subtree: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var containers []Container
	for rows.Next() {
		var container Container
		var parentID sql.NullString
		var createdAt, updatedAt string
		err := rows.Scan(
			&container.ID, &container.UniverseID, &parentID, &container.Kind,
			&container.Title, &container.Description, &container.SortOrder,
			&createdAt, &updatedAt, &container.Depth,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subtree row: %w", err)
		}
		if parentID.Valid {
			container.ParentID = &parentID.String
		}
		if container.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		if container.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, err
		}
		containers = append(containers, container)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	if len(containers) == 0 {
		return nil, ErrNotFound
	}
	return containers, nil
}

// ReorderChildren verifies that every listed container currently is a child
// of parentID (ErrOwnershipMismatch otherwise), then assigns sort_order by
// position. The caller runs this inside a transaction so the reorder is
// all-or-nothing.
func (r *ContainerRepo) ReorderChildren(ctx context.Context, parentID string, orderedIDs []string) error {
	for _, id := range orderedIDs {
		var actualParent sql.NullString
		err := r.db.QueryRowContext(ctx,
			"SELECT parent_container_id FROM containers WHERE id = ?", id,
		).Scan(&actualParent)
		if err == sql.ErrNoRows {
			return fmt.Errorf("container %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to query container parent: %w", err)
		}
		if !actualParent.Valid || actualParent.String != parentID {
			return fmt.Errorf("container %s is not a child of %s: %w", id, parentID, ErrOwnershipMismatch)
		}
	}

	for position, id := range orderedIDs {
		_, err := r.db.ExecContext(ctx,
			"UPDATE containers SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			position, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update sibling order: %w", err)
		}
	}
	return nil
}

// Update applies the provided fields to a container and returns the updated
// row. Returns ErrNotFound when the container does not exist.
func (r *ContainerRepo) Update(ctx context.Context, id string, in UpdateContainer) (*Container, error) {
	set := "updated_at = CURRENT_TIMESTAMP"
	args := []any{}
	if in.Kind != nil {
		set += ", kind = ?"
		args = append(args, *in.Kind)
	}
	if in.Title != nil {
		set += ", title = ?"
		args = append(args, *in.Title)
	}
	if in.Description != nil {
		set += ", description = ?"
		args = append(args, *in.Description)
	}
	if in.SortOrder != nil {
		set += ", sort_order = ?"
		args = append(args, *in.SortOrder)
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, "UPDATE containers SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update container: %w", err)
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

// DeleteSubtree removes a container and every descendant, deepest first so
// no delete ever references a still-present child. Stories inside deleted
// containers, and their versions and snapshots, are removed by the storage
// cascade. Returns the IDs of every deleted container, root included.
// The caller runs this inside a transaction.
func (r *ContainerRepo) DeleteSubtree(ctx context.Context, rootID string) ([]string, error) {
	subtree, err := r.Subtree(ctx, rootID, -1)
	if err != nil {
		return nil, err
	}

	// Subtree is depth-ascending; delete in reverse for bottom-up order.
	deleted := make([]string, 0, len(subtree))
	for i := len(subtree) - 1; i >= 0; i-- {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM containers WHERE id = ?", subtree[i].ID); err != nil {
			return nil, fmt.Errorf("failed to delete container %s: %w", subtree[i].ID, err)
		}
	}
	for _, container := range subtree {
		deleted = append(deleted, container.ID)
	}
	return deleted, nil
}

// CountStories returns how many stories a container directly owns.
func (r *ContainerRepo) CountStories(ctx context.Context, containerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM stories WHERE container_id = ?", containerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count container stories: %w", err)
	}
	return count, nil
}

func scanContainer(row rowScanner) (*Container, error) {
	var container Container
	var parentID sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&container.ID, &container.UniverseID, &parentID, &container.Kind,
		&container.Title, &container.Description, &container.SortOrder,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		container.ParentID = &parentID.String
	}
	if container.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if container.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &container, nil
}
