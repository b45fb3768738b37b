package contact

import (
	"context"

	"github.com/fekalegi/property-management-system/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]*domain.Contact, error)
}
