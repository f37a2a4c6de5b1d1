package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_universe_service.go -package=mocks -mock_names=UniverseService=MockUniverseService storyloom/internal/service UniverseService

import (
	"context"

	"storyloom/internal/contextutil"
	"storyloom/internal/storage"
)

// CreateUniverseRequest holds the inputs for creating a universe.
type CreateUniverseRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
}

// UpdateUniverseRequest holds the sparse fields of a universe update.
type UpdateUniverseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// UniverseService provides universe CRUD.
type UniverseService interface {
	CreateUniverse(ctx context.Context, req CreateUniverseRequest) (*storage.Universe, error)
	GetUniverse(ctx context.Context, id string) (*storage.Universe, error)
	ListUniverses(ctx context.Context) ([]storage.Universe, error)
	UpdateUniverse(ctx context.Context, id string, req UpdateUniverseRequest) (*storage.Universe, error)
	DeleteUniverse(ctx context.Context, id string) error
}

// universeService implements UniverseService.
type universeService struct {
	universes *storage.UniverseRepo
}

// NewUniverseService creates a new UniverseService.
func NewUniverseService(universes *storage.UniverseRepo) UniverseService {
	return &universeService{universes: universes}
}

// CreateUniverse validates the request and inserts a new universe.
func (s *universeService) CreateUniverse(ctx context.Context, req CreateUniverseRequest) (*storage.Universe, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid universe input", "error", err)
		return nil, err
	}

	universe, err := s.universes.Create(ctx, req.Name, req.Description)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create universe", "error", err)
		return nil, WrapError(err, "failed to create universe")
	}

	logger.InfoContext(ctx, "universe created", "universe_id", universe.ID, "name", universe.Name)
	return universe, nil
}

// GetUniverse returns a universe by id.
func (s *universeService) GetUniverse(ctx context.Context, id string) (*storage.Universe, error) {
	universe, err := s.universes.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "universe", id)
	}
	return universe, nil
}

// ListUniverses returns all universes ordered by name.
func (s *universeService) ListUniverses(ctx context.Context) ([]storage.Universe, error) {
	return s.universes.List(ctx)
}

// UpdateUniverse applies a sparse update to a universe.
func (s *universeService) UpdateUniverse(ctx context.Context, id string, req UpdateUniverseRequest) (*storage.Universe, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkInput(req); err != nil {
		logger.WarnContext(ctx, "invalid universe input", "error", err)
		return nil, err
	}

	universe, err := s.universes.Update(ctx, id, storage.UpdateUniverse{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, asNotFound(err, "universe", id)
	}
	return universe, nil
}

// DeleteUniverse removes a universe and, by cascade, everything under it.
func (s *universeService) DeleteUniverse(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.universes.Delete(ctx, id); err != nil {
		return asNotFound(err, "universe", id)
	}

	logger.InfoContext(ctx, "universe deleted", "universe_id", id)
	return nil
}
