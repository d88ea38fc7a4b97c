package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// ReferenceRepository defines persistence for reference data categories,
// addressed by their unique name.
type ReferenceRepository interface {
	Create(ctx context.Context, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error)
	FindByName(ctx context.Context, name string) (*domain.ReferenceCategory, error)
	List(ctx context.Context) ([]*domain.ReferenceCategory, error)
	Update(ctx context.Context, name string, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error)
	Delete(ctx context.Context, name string) error
}

// ReferenceService defines use-case operations for reference data.
type ReferenceService interface {
	Create(ctx context.Context, name string, values []string) (*domain.ReferenceCategory, error)
	Get(ctx context.Context, name string) (*domain.ReferenceCategory, error)
	List(ctx context.Context) ([]*domain.ReferenceCategory, error)
	Update(ctx context.Context, name string, newName string, values []string) (*domain.ReferenceCategory, error)
	Delete(ctx context.Context, name string) error
}
