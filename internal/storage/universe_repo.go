package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// UniverseRepo provides methods for universe operations.
type UniverseRepo struct {
	db DBTX
}

// NewUniverseRepo creates a new UniverseRepo.
func NewUniverseRepo(db *sql.DB) *UniverseRepo {
	return &UniverseRepo{db: db}
}

// WithTx returns a copy of the repo bound to the given transaction.
func (r *UniverseRepo) WithTx(tx *sql.Tx) *UniverseRepo {
	return &UniverseRepo{db: tx}
}

// Create inserts a new universe and returns it with store-side timestamps.
func (r *UniverseRepo) Create(ctx context.Context, name, description string) (*Universe, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO universes (id, name, description) VALUES (?, ?, ?)",
		id, name, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert universe: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID gets a universe by its ID. Returns ErrNotFound if not found.
func (r *UniverseRepo) GetByID(ctx context.Context, id string) (*Universe, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at, updated_at FROM universes WHERE id = ?",
		id,
	)
	universe, err := scanUniverse(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query universe: %w", err)
	}
	return universe, nil
}

// List returns all universes ordered by name.
func (r *UniverseRepo) List(ctx context.Context) ([]Universe, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, created_at, updated_at FROM universes ORDER BY name, created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query universes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var universes []Universe
	for rows.Next() {
		universe, err := scanUniverse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan universe: %w", err)
		}
		universes = append(universes, *universe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return universes, nil
}

// UpdateUniverse holds the sparse fields of a universe update; nil fields
// are left untouched.
type UpdateUniverse struct {
	Name        *string
	Description *string
}

// Update applies the provided fields to a universe and returns the updated
// row. Returns ErrNotFound when the universe does not exist.
func (r *UniverseRepo) Update(ctx context.Context, id string, in UpdateUniverse) (*Universe, error) {
	set := "updated_at = CURRENT_TIMESTAMP"
	args := []any{}
	if in.Name != nil {
		set += ", name = ?"
		args = append(args, *in.Name)
	}
	if in.Description != nil {
		set += ", description = ?"
		args = append(args, *in.Description)
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, "UPDATE universes SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update universe: %w", err)
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

// Delete removes a universe; containers and stories inside it go with it by
// cascade. Returns ErrNotFound when the universe does not exist.
func (r *UniverseRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM universes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete universe: %w", err)
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

func scanUniverse(row rowScanner) (*Universe, error) {
	var universe Universe
	var createdAt, updatedAt string
	if err := row.Scan(&universe.ID, &universe.Name, &universe.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	universe.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	universe.UpdatedAt, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, err
	}
	return &universe, nil
}
