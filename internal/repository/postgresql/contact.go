package postgresql

import (
	"context"
	"fmt"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	id := uuid.New()
	err := r.db.QueryRow(ctx, `
		INSERT INTO contacts (id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, id, c.Name, c.Email, c.Phone, c.Message).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert contact: %w", err)
	}
	c.ID = id.String()
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("could not list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*domain.Contact{}
	for rows.Next() {
		var (
			c  domain.Contact
			id uuid.UUID
		)
		if err := rows.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan contact: %w", err)
		}
		c.ID = id.String()
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list contacts: %w", err)
	}
	return contacts, nil
}
