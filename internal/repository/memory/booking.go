package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, len(r.bookings))
	for i := range r.bookings {
		b := r.bookings[i]
		out[i] = &b
	}
	return out, nil
}
