package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	publisher domain.EventPublisher
	log       zerolog.Logger
}

type CreateInput struct {
	Name      string
	Apartment string
	Contact   string
	Status    domain.TenantStatus
}

func NewService(repo Repository, publisher domain.EventPublisher, log zerolog.Logger) *Service {
	if publisher == nil {
		publisher = domain.NopPublisher{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

func (s *Service) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Tenant, error) {
	tenants, err := s.repo.List(ctx, opts)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch tenants")
		return nil, err
	}
	return tenants, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Tenant, error) {
	status := in.Status
	if status == "" {
		status = domain.TenantActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be %s or %s", domain.ErrInvalidInput, domain.TenantActive, domain.TenantInactive)
	}

	t := &domain.Tenant{
		Name:      in.Name,
		Apartment: in.Apartment,
		Contact:   in.Contact,
		Status:    status,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.log.Error().Err(err).Msg("Failed to create tenant")
		return nil, err
	}

	s.log.Info().Str("tenant_id", t.ID).Str("name", t.Name).Msg("Tenant created")
	s.publish(ctx, domain.EventTenantCreated, t)
	return t, nil
}

func (s *Service) ToggleStatus(ctx context.Context, id string) (*domain.Tenant, error) {
	t, err := s.repo.ToggleStatus(ctx, id)
	if err != nil {
		s.logFailure(err, id, "Failed to update status")
		return nil, err
	}

	s.log.Info().Str("tenant_id", id).Str("status", string(t.Status)).Msg("Tenant status toggled")
	s.publish(ctx, domain.EventTenantStatusToggled, t)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logFailure(err, id, "Failed to update tenant")
		return nil, err
	}

	s.publish(ctx, domain.EventTenantUpdated, t)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(err, id, "Failed to delete tenant")
		return err
	}

	s.log.Info().Str("tenant_id", id).Msg("Tenant deleted")
	s.publish(ctx, domain.EventTenantDeleted, map[string]string{"_id": id})
	return nil
}

// logFailure keeps not-found lookups out of the error log.
func (s *Service) logFailure(err error, id, msg string) {
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debug().Str("tenant_id", id).Msg("Tenant not found")
		return
	}
	s.log.Error().Err(err).Str("tenant_id", id).Msg(msg)
}

func (s *Service) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, domain.NewEvent(eventType, data)); err != nil {
		s.log.Warn().Err(err).Str("event", eventType).Msg("Failed to publish event")
	}
}
