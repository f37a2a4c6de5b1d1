package storage

import "time"

// Universe is the top-level world that owns containers and stories.
type Universe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Container is an organizational node in a universe's hierarchy.
// A container that already holds stories cannot gain child containers;
// the repos enforce that rule at write time.
type Container struct {
	ID          string    `json:"id"`
	UniverseID  string    `json:"universe_id"`
	ParentID    *string   `json:"parent_id"` // nil for root containers
	Kind        string    `json:"kind"`      // e.g. "series", "collection", "book"
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Depth is populated only by Subtree queries (0 = subtree root).
	Depth int `json:"depth"`
}

// Story is a writable document with its own version/snapshot ledger.
// ActiveVersionID and ActiveSnapshotID are plain references, not foreign
// keys: the schema cannot express "the active snapshot belongs to the
// active version", so every operation that switches or deletes versions
// keeps the pair consistent itself.
type Story struct {
	ID               string     `json:"id"`
	UniverseID       string     `json:"universe_id"`
	ContainerID      *string    `json:"container_id"` // nil when the story sits at the universe root
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	VariationGroupID *string    `json:"variation_group_id"` // sibling alternates of the same narrative
	ActiveVersionID  *string    `json:"active_version_id"`
	ActiveSnapshotID *string    `json:"active_snapshot_id"`
	WordCount        int        `json:"word_count"`
	LastEditedAt     *time.Time `json:"last_edited_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StoryVersion is a named branch of a story's content history.
type StoryVersion struct {
	ID        string    `json:"id"`
	StoryID   string    `json:"story_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StorySnapshot is a point-in-time save within a version. Identity is
// immutable; content may be rewritten in place by autosave.
type StorySnapshot struct {
	ID        string    `json:"id"`
	VersionID string    `json:"version_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
