package postgresql

import (
	"context"
	"fmt"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	id := uuid.New()
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (id, name, email, date, house)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, id, b.Name, b.Email, b.Date, b.House).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert booking: %w", err)
	}
	b.ID = id.String()
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, date, house, created_at
		FROM bookings
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*domain.Booking{}
	for rows.Next() {
		var (
			b  domain.Booking
			id uuid.UUID
		)
		if err := rows.Scan(&id, &b.Name, &b.Email, &b.Date, &b.House, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan booking: %w", err)
		}
		b.ID = id.String()
		b.Date = b.Date.UTC()
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}
	return bookings, nil
}
