package tenant

import (
	"context"

	"github.com/fekalegi/property-management-system/internal/domain"
)

// Repository defines the persistence operations for tenant records.
type Repository interface {
	List(ctx context.Context, opts domain.ListOptions) ([]*domain.Tenant, error)
	// Create assigns the identifier and timestamps on t.
	Create(ctx context.Context, t *domain.Tenant) error
	// ToggleStatus flips the status of a single tenant atomically.
	ToggleStatus(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
}
