package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

// Store is the persistence the service needs; repository.ProjectRepository satisfies it.
type Store interface {
	FindAll(ctx context.Context) ([]domain.Project, error)
	Insert(ctx context.Context, p domain.Project) (string, error)
	Update(ctx context.Context, id string, f domain.Fields) error
	Delete(ctx context.Context, id string) error
}

// ListCache holds the normalized list between writes.
// Set must drop the fill when Invalidate ran after Generation was read.
type ListCache interface {
	Get(ctx context.Context) ([]domain.Project, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, gen int64, items []domain.Project) (bool, error)
	Invalidate(ctx context.Context) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store  Store
	cache  ListCache
	logger *zap.Logger
}

// NewProjectService creates a new project service. store may be nil when no
// database is configured; cache may be nil to disable caching.
func NewProjectService(store Store, cache ListCache, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// List returns every project in normalized form.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}

	fill := false
	var gen int64
	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("project cache read failed", zap.Error(err))
		} else if ok {
			return items, nil
		}
		if gen, err = s.cache.Generation(ctx); err != nil {
			s.logger.Warn("project cache generation read failed", zap.Error(err))
		} else {
			fill = true
		}
	}

	items, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items = domain.NormalizeAll(items)

	if fill {
		stored, err := s.cache.Set(ctx, gen, items)
		switch {
		case err != nil:
			s.logger.Warn("project cache write failed", zap.Error(err))
		case !stored:
			s.logger.Debug("project cache fill skipped after concurrent write")
		}
	}
	return items, nil
}

// Create validates and inserts a project, returning the generated id.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	if s.store == nil {
		return "", domain.ErrNotConfigured
	}

	id, err := s.store.Insert(ctx, in.Project())
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return id, nil
}

// Update applies a partial update keyed by in.ID.
func (s *ProjectService) Update(ctx context.Context, in domain.UpdateInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}

	if err := s.store.Update(ctx, in.ID, in.Fields()); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &domain.ValidationError{Field: "id", Message: "is required"}
	}
	if s.store == nil {
		return domain.ErrNotConfigured
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("project cache invalidation failed", zap.Error(err))
	}
}
