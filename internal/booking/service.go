package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/rs/zerolog"
)

// Accepted layouts for the booking date, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

var (
	errMissingFields = fmt.Errorf("%w: All fields are required", domain.ErrInvalidInput)
	errInvalidDate   = fmt.Errorf("%w: Invalid date", domain.ErrInvalidInput)
)

type Service struct {
	repo      Repository
	publisher domain.EventPublisher
	log       zerolog.Logger
}

type CreateInput struct {
	Name  string
	Email string
	Date  string
	House string
}

func NewService(repo Repository, publisher domain.EventPublisher, log zerolog.Logger) *Service {
	if publisher == nil {
		publisher = domain.NopPublisher{}
	}
	return &Service{repo: repo, publisher: publisher, log: log}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Booking, error) {
	if in.Name == "" || in.Email == "" || in.Date == "" || in.House == "" {
		return nil, errMissingFields
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	b := &domain.Booking{
		Name:  in.Name,
		Email: in.Email,
		Date:  date,
		House: in.House,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.log.Error().Err(err).Msg("Failed to create booking")
		return nil, err
	}

	s.log.Info().Str("booking_id", b.ID).Str("house", b.House).Msg("Booking confirmed")
	if err := s.publisher.Publish(ctx, domain.NewEvent(domain.EventBookingCreated, b)); err != nil {
		s.log.Warn().Err(err).Str("booking_id", b.ID).Msg("Failed to publish event")
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch bookings")
		return nil, err
	}
	return bookings, nil
}

// ParseDate accepts an RFC 3339 timestamp, a datetime-local value or a plain
// calendar date. The result is always in UTC.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", v)
}
