package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_container_service.go -package=mocks -mock_names=ContainerService=MockContainerService storyloom/internal/service ContainerService

import (
	"context"
	"database/sql"

	"storyloom/internal/contextutil"
	"storyloom/internal/storage"
)

// CreateContainerRequest holds the inputs for creating a container.
type CreateContainerRequest struct {
	UniverseID  string  `json:"universe_id" validate:"required"`
	ParentID    *string `json:"parent_id" validate:"omitempty,min=1"`
	Kind        string  `json:"kind" validate:"required,oneof=novel series collection arc book folder"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sort_order"`
}

// UpdateContainerRequest holds the sparse fields of a container update.
type UpdateContainerRequest struct {
	Kind        *string `json:"kind" validate:"omitempty,oneof=novel series collection arc book folder"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// ReorderChildrenRequest names the new sibling order, first to last.
type ReorderChildrenRequest struct {
	ChildIDs []string `json:"child_ids" validate:"required,min=1"`
}

// ContainerService provides container hierarchy operations.
type ContainerService interface {
	CreateContainer(ctx context.Context, req CreateContainerRequest) (*storage.Container, error)
	GetContainer(ctx context.Context, id string) (*storage.Container, error)
	ListContainers(ctx context.Context, universeID string) ([]storage.Container, error)
	ListChildren(ctx context.Context, parentID string) ([]storage.Container, error)
	GetSubtree(ctx context.Context, rootID string, maxDepth int) ([]storage.Container, error)
	ReorderChildren(ctx context.Context, parentID string, req ReorderChildrenRequest) error
	UpdateContainer(ctx context.Context, id string, req UpdateContainerRequest) (*storage.Container, error)
	DeleteContainer(ctx context.Context, id string) ([]string, error)
}

// containerService implements ContainerService.
type containerService struct {
	db         *sql.DB
	universes  *storage.UniverseRepo
	containers *storage.ContainerRepo
}

// NewContainerService creates a new ContainerService.
func NewContainerService(db *sql.DB, universes *storage.UniverseRepo, containers *storage.ContainerRepo) ContainerService {
	return &containerService{
		db:         db,
		universes:  universes,
		containers: containers,
	}
}

// CreateContainer validates the request and inserts a container, enforcing
// the hierarchy invariants (parent ownership, leaf protection, depth cap).
func (s *containerService) CreateContainer(ctx context.Context, req CreateContainerRequest) (*storage.Container, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid container input", "error", err)
		return nil, err
	}

	if _, err := s.universes.GetByID(ctx, req.UniverseID); err != nil {
		return nil, asNotFound(err, "universe", req.UniverseID)
	}

	container, err := s.containers.Create(ctx, storage.CreateContainer{
		UniverseID:  req.UniverseID,
		ParentID:    req.ParentID,
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		logger.WarnContext(ctx, "container creation rejected", "error", err)
		if req.ParentID != nil {
			return nil, asNotFound(err, "parent container", *req.ParentID)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "container created",
		"container_id", container.ID, "universe_id", container.UniverseID, "kind", container.Kind)
	return container, nil
}

// GetContainer returns a container by id.
func (s *containerService) GetContainer(ctx context.Context, id string) (*storage.Container, error) {
	container, err := s.containers.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "container", id)
	}
	return container, nil
}

// ListContainers returns all containers of a universe in sibling order.
func (s *containerService) ListContainers(ctx context.Context, universeID string) ([]storage.Container, error) {
	if _, err := s.universes.GetByID(ctx, universeID); err != nil {
		return nil, asNotFound(err, "universe", universeID)
	}
	return s.containers.ListByUniverse(ctx, universeID)
}

// ListChildren returns the direct children of a container in sibling order.
func (s *containerService) ListChildren(ctx context.Context, parentID string) ([]storage.Container, error) {
	if _, err := s.containers.GetByID(ctx, parentID); err != nil {
		return nil, asNotFound(err, "container", parentID)
	}
	return s.containers.ListChildren(ctx, parentID)
}

// GetSubtree returns a container and its descendants in breadth-first order.
// maxDepth bounds the traversal relative to the root; negative means
// unbounded.
func (s *containerService) GetSubtree(ctx context.Context, rootID string, maxDepth int) ([]storage.Container, error) {
	subtree, err := s.containers.Subtree(ctx, rootID, maxDepth)
	if err != nil {
		return nil, asNotFound(err, "container", rootID)
	}
	return subtree, nil
}

// ReorderChildren rewrites the sibling order of a container's children in
// one transaction; a list entry that is not a child of parentID rolls the
// whole reorder back.
func (s *containerService) ReorderChildren(ctx context.Context, parentID string, req ReorderChildrenRequest) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid reorder input", "error", err)
		return err
	}

	if _, err := s.containers.GetByID(ctx, parentID); err != nil {
		return asNotFound(err, "container", parentID)
	}

	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		return s.containers.WithTx(tx).ReorderChildren(ctx, parentID, req.ChildIDs)
	})
	if err != nil {
		logger.WarnContext(ctx, "reorder rejected", "parent_id", parentID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "children reordered", "parent_id", parentID, "count", len(req.ChildIDs))
	return nil
}

// UpdateContainer applies a sparse update to a container.
func (s *containerService) UpdateContainer(ctx context.Context, id string, req UpdateContainerRequest) (*storage.Container, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid container input", "error", err)
		return nil, err
	}

	container, err := s.containers.Update(ctx, id, storage.UpdateContainer{
		Kind:        req.Kind,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return nil, asNotFound(err, "container", id)
	}
	return container, nil
}

// DeleteContainer removes a container subtree in one transaction and
// returns every removed container id, root included. Stories inside the
// subtree go by storage cascade.
func (s *containerService) DeleteContainer(ctx context.Context, id string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var deleted []string
	err := storage.Tx(ctx, s.db, func(tx *sql.Tx) error {
		ids, err := s.containers.WithTx(tx).DeleteSubtree(ctx, id)
		if err != nil {
			return err
		}
		deleted = ids
		return nil
	})
	if err != nil {
		return nil, asNotFound(err, "container", id)
	}

	logger.InfoContext(ctx, "container subtree deleted", "root_id", id, "count", len(deleted))
	return deleted, nil
}
