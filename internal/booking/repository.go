package booking

import (
	"context"

	"github.com/fekalegi/property-management-system/internal/domain"
)

// Repository is an append-only store of booking requests.
type Repository interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
}
