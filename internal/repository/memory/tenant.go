// Package memory provides in-process stores used by tests and by the
// "memory" database driver.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
)

type TenantRepository struct {
	mu      sync.RWMutex
	tenants map[string]domain.Tenant
	order   []string
}

func NewTenantRepository() *TenantRepository {
	return &TenantRepository{tenants: map[string]domain.Tenant{}}
}

func (r *TenantRepository) List(_ context.Context, opts domain.ListOptions) ([]*domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := opts.Window(len(r.order))
	out := make([]*domain.Tenant, 0, end-start)
	for _, id := range r.order[start:end] {
		t := r.tenants[id]
		out = append(out, &t)
	}
	return out, nil
}

func (r *TenantRepository) Create(_ context.Context, t *domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	r.tenants[t.ID] = *t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TenantRepository) ToggleStatus(_ context.Context, id string) (*domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Status = t.Status.Toggled()
	t.UpdatedAt = time.Now().UTC()
	r.tenants[id] = t
	return &t, nil
}

func (r *TenantRepository) Update(_ context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tenants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&t)
	t.UpdatedAt = time.Now().UTC()
	r.tenants[id] = t
	return &t, nil
}

func (r *TenantRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tenants[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tenants, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
