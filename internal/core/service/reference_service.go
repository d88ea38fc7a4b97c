package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// ReferenceCache abstracts the read-through cache for reference categories
// (Redis). Failures are soft: a miss or a cache error falls back to the
// store.
type ReferenceCache interface {
	Get(ctx context.Context, name string) (*domain.ReferenceCategory, error)
	Set(ctx context.Context, cat *domain.ReferenceCategory) error
	Invalidate(ctx context.Context, name string) error
}

// ReferenceService implements reference-data category management with a
// cache in front of single-category reads.
type ReferenceService struct {
	repo  ports.ReferenceRepository
	cache ReferenceCache
	log   zerolog.Logger
}

func NewReferenceService(repo ports.ReferenceRepository, cache ReferenceCache, log zerolog.Logger) *ReferenceService {
	return &ReferenceService{repo: repo, cache: cache, log: log}
}

func (s *ReferenceService) Create(ctx context.Context, name string, values []string) (*domain.ReferenceCategory, error) {
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	}
	return s.repo.Create(ctx, &domain.ReferenceCategory{Name: name, Values: values})
}

func (s *ReferenceService) Get(ctx context.Context, name string) (*domain.ReferenceCategory, error) {
	if s.cache != nil {
		if cat, err := s.cache.Get(ctx, name); err == nil && cat != nil {
			return cat, nil
		}
	}

	cat, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cat); err != nil {
			s.log.Warn().Err(err).Str("category", name).Msg("failed to cache reference category")
		}
	}
	return cat, nil
}

func (s *ReferenceService) List(ctx context.Context) ([]*domain.ReferenceCategory, error) {
	return s.repo.List(ctx)
}

// Update renames and/or replaces the value list of a category. Renaming onto
// an existing name is rejected.
func (s *ReferenceService) Update(ctx context.Context, name string, newName string, values []string) (*domain.ReferenceCategory, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if newName == "" {
		newName = name
	}
	if newName != name {
		if _, err := s.repo.FindByName(ctx, newName); err == nil {
			return nil, domain.ErrCategoryExists
		}
	}

	updated, err := s.repo.Update(ctx, name, &domain.ReferenceCategory{
		ID:     existing.ID,
		Name:   newName,
		Values: values,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, name, newName)
	return updated, nil
}

func (s *ReferenceService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.invalidate(ctx, name)
	return nil
}

func (s *ReferenceService) invalidate(ctx context.Context, names ...string) {
	if s.cache == nil {
		return
	}
	for _, n := range names {
		if err := s.cache.Invalidate(ctx, n); err != nil {
			s.log.Warn().Err(err).Str("category", n).Msg("failed to invalidate reference cache")
		}
	}
}
