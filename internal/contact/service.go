package contact

import (
	"context"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	publisher domain.EventPublisher
	log       zerolog.Logger
}

type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func NewService(repo Repository, publisher domain.EventPublisher, log zerolog.Logger) *Service {
	if publisher == nil {
		publisher = domain.NopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher, log: log}
}

// Submit persists a contact-form submission. No field is mandatory.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Contact, error) {
	c := &domain.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Msg("Failed to save contact")
		return nil, err
	}

	s.log.Info().Str("contact_id", c.ID).Str("email", c.Email).Msg("Contact form submitted")
	if err := s.publisher.Publish(ctx, domain.NewEvent(domain.EventContactSubmitted, c)); err != nil {
		s.log.Warn().Err(err).Str("contact_id", c.ID).Msg("Failed to publish event")
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch contacts")
		return nil, err
	}
	return contacts, nil
}
