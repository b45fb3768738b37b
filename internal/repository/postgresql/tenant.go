package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekalegi/property-management-system/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tenantColumns = "id, name, apartment, contact, status, created_at, updated_at"

type TenantRepository struct {
	db *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Tenant, error) {
	// LIMIT NULL returns every row.
	var limit *int
	if opts.Limit > 0 {
		limit = &opts.Limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+tenantColumns+`
		FROM tenants
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("could not list tenants: %w", err)
	}
	defer rows.Close()

	tenants := []*domain.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list tenants: %w", err)
	}
	return tenants, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	id := uuid.New()
	err := r.db.QueryRow(ctx, `
		INSERT INTO tenants (id, name, apartment, contact, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, id, t.Name, t.Apartment, t.Contact, string(t.Status)).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not insert tenant: %w", err)
	}
	t.ID = id.String()
	return nil
}

func (r *TenantRepository) ToggleStatus(ctx context.Context, id string) (*domain.Tenant, error) {
	tenantID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `
		UPDATE tenants
		SET status = CASE WHEN status = 'Active' THEN 'Inactive' ELSE 'Active' END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+tenantColumns, tenantID)
	return scanTenantRow(row, id)
}

func (r *TenantRepository) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	tenantID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	row := r.db.QueryRow(ctx, `
		UPDATE tenants
		SET name = COALESCE($2, name),
		    apartment = COALESCE($3, apartment),
		    contact = COALESCE($4, contact),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+tenantColumns, tenantID, patch.Name, patch.Apartment, patch.Contact)
	return scanTenantRow(row, id)
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	tenantID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, tenantID)
	if err != nil {
		return fmt.Errorf("could not delete tenant %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTenantRow(row pgx.Row, id string) (*domain.Tenant, error) {
	t, err := scanTenant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not update tenant %s: %w", id, err)
	}
	return t, nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var (
		t      domain.Tenant
		id     uuid.UUID
		status string
	)
	if err := row.Scan(&id, &t.Name, &t.Apartment, &t.Contact, &status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.ID = id.String()
	t.Status = domain.TenantStatus(status)
	return &t, nil
}
