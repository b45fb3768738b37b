package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
)

type ContactRepository struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(_ context.Context, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	r.contacts = append(r.contacts, *c)
	return nil
}

func (r *ContactRepository) List(_ context.Context) ([]*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Contact, len(r.contacts))
	for i := range r.contacts {
		c := r.contacts[i]
		out[i] = &c
	}
	return out, nil
}
