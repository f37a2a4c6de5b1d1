package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys (required for every cascade in the schema),
// switches to WAL journaling, and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Foreign keys are off by default in SQLite; without them none of the
	// ON DELETE CASCADE edges fire and orphaned versions/snapshots pile up.
	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	// One writer connection; every transaction is serialized at the
	// connection level, so readers always see the latest committed state.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// Ownership is expressed through ON DELETE CASCADE down the whole chain:
// universe to container, container to container, container to story, story
// to version, version to snapshot. The stories.active_version_id and
// active_snapshot_id columns are not foreign keys: "the active snapshot
// belongs to the active version" is a cross-row rule the schema cannot
// state, so the code that switches and deletes versions maintains it.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS universes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS containers (
			id TEXT PRIMARY KEY,
			universe_id TEXT NOT NULL REFERENCES universes(id) ON DELETE CASCADE,
			parent_container_id TEXT REFERENCES containers(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS stories (
			id TEXT PRIMARY KEY,
			universe_id TEXT NOT NULL REFERENCES universes(id) ON DELETE CASCADE,
			container_id TEXT REFERENCES containers(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			variation_group_id TEXT,
			active_version_id TEXT,
			active_snapshot_id TEXT,
			word_count INTEGER NOT NULL DEFAULT 0,
			last_edited_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS story_versions (
			id TEXT PRIMARY KEY,
			story_id TEXT NOT NULL REFERENCES stories(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS story_snapshots (
			id TEXT PRIMARY KEY,
			version_id TEXT NOT NULL REFERENCES story_versions(id) ON DELETE CASCADE,
			content TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_containers_universe ON containers(universe_id);`,
		`CREATE INDEX IF NOT EXISTS idx_containers_parent ON containers(parent_container_id);`,
		`CREATE INDEX IF NOT EXISTS idx_stories_universe ON stories(universe_id);`,
		`CREATE INDEX IF NOT EXISTS idx_stories_container ON stories(container_id);`,
		`CREATE INDEX IF NOT EXISTS idx_versions_story ON story_versions(story_id);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_version ON story_snapshots(version_id, created_at);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
