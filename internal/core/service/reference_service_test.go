package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

type stubReferenceRepo struct {
	cats  map[string]*domain.ReferenceCategory
	reads int
}

func newStubReferenceRepo() *stubReferenceRepo {
	return &stubReferenceRepo{cats: make(map[string]*domain.ReferenceCategory)}
}

func cloneCategory(c *domain.ReferenceCategory) *domain.ReferenceCategory {
	clone := *c
	clone.Values = append([]string(nil), c.Values...)
	return &clone
}

func (r *stubReferenceRepo) Create(_ context.Context, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error) {
	if _, ok := r.cats[cat.Name]; ok {
		return nil, domain.ErrCategoryExists
	}
	r.cats[cat.Name] = cloneCategory(cat)
	return cloneCategory(cat), nil
}

func (r *stubReferenceRepo) FindByName(_ context.Context, name string) (*domain.ReferenceCategory, error) {
	r.reads++
	if c, ok := r.cats[name]; ok {
		return cloneCategory(c), nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubReferenceRepo) List(_ context.Context) ([]*domain.ReferenceCategory, error) {
	out := make([]*domain.ReferenceCategory, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *stubReferenceRepo) Update(_ context.Context, name string, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error) {
	if _, ok := r.cats[name]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	delete(r.cats, name)
	r.cats[cat.Name] = cloneCategory(cat)
	return cloneCategory(cat), nil
}

func (r *stubReferenceRepo) Delete(_ context.Context, name string) error {
	if _, ok := r.cats[name]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.cats, name)
	return nil
}

type memoryCache struct {
	cats map[string]*domain.ReferenceCategory
}

func newMemoryCache() *memoryCache {
	return &memoryCache{cats: make(map[string]*domain.ReferenceCategory)}
}

func (c *memoryCache) Get(_ context.Context, name string) (*domain.ReferenceCategory, error) {
	if cat, ok := c.cats[name]; ok {
		return cloneCategory(cat), nil
	}
	return nil, nil
}

func (c *memoryCache) Set(_ context.Context, cat *domain.ReferenceCategory) error {
	c.cats[cat.Name] = cloneCategory(cat)
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, name string) error {
	delete(c.cats, name)
	return nil
}

func TestReferenceService_Create_Duplicate(t *testing.T) {
	svc := NewReferenceService(newStubReferenceRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "machines", []string{"M-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "machines", []string{"M-2"}); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestReferenceService_Get_ReadThrough(t *testing.T) {
	repo := newStubReferenceRepo()
	cache := newMemoryCache()
	svc := NewReferenceService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "shifts", []string{"Morning", "Night"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.reads = 0

	// First read hits the store and fills the cache.
	if _, err := svc.Get(context.Background(), "shifts"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if repo.reads != 1 {
		t.Fatalf("store reads = %d, want 1", repo.reads)
	}

	// Second read is served from cache.
	if _, err := svc.Get(context.Background(), "shifts"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if repo.reads != 1 {
		t.Fatalf("store reads = %d after cached read, want 1", repo.reads)
	}
}

func TestReferenceService_Update_InvalidatesCache(t *testing.T) {
	repo := newStubReferenceRepo()
	cache := newMemoryCache()
	svc := NewReferenceService(repo, cache, zerolog.Nop())

	_, _ = svc.Create(context.Background(), "shifts", []string{"Morning"})
	_, _ = svc.Get(context.Background(), "shifts") // fill cache

	if _, err := svc.Update(context.Background(), "shifts", "", []string{"Morning", "Night"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(context.Background(), "shifts")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Values) != 2 {
		t.Fatalf("stale values after update: %v", got.Values)
	}
}

func TestReferenceService_Update_RenameCollision(t *testing.T) {
	svc := NewReferenceService(newStubReferenceRepo(), nil, zerolog.Nop())

	_, _ = svc.Create(context.Background(), "machines", []string{"M-1"})
	_, _ = svc.Create(context.Background(), "shifts", []string{"Morning"})

	if _, err := svc.Update(context.Background(), "shifts", "machines", nil); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists on rename collision, got %v", err)
	}
}

func TestReferenceService_Delete_Invalidates(t *testing.T) {
	repo := newStubReferenceRepo()
	cache := newMemoryCache()
	svc := NewReferenceService(repo, cache, zerolog.Nop())

	_, _ = svc.Create(context.Background(), "shifts", []string{"Morning"})
	_, _ = svc.Get(context.Background(), "shifts")

	if err := svc.Delete(context.Background(), "shifts"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "shifts"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound after delete, got %v", err)
	}
}
