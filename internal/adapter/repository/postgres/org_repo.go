package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debtwise/debtwise/internal/domain"
)

// OrganizationRepository implements organization persistence
type OrganizationRepository struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{pool: pool}
}

// Create inserts a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `
		INSERT INTO organizations (id, name, emergency_fund, long_term_savings, long_term_target, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.EmergencyFund,
		org.LongTermSavings,
		org.LongTermTarget,
		org.CreatedAt,
		org.UpdatedAt,
	)

	return err
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	query := `
		SELECT id, name, emergency_fund, long_term_savings, long_term_target, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var org domain.Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.EmergencyFund,
		&org.LongTermSavings,
		&org.LongTermTarget,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	return &org, nil
}

// UpdateSavings persists the organization's savings figures
func (r *OrganizationRepository) UpdateSavings(ctx context.Context, org *domain.Organization) error {
	query := `
		UPDATE organizations
		SET emergency_fund = $2, long_term_savings = $3, long_term_target = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		org.ID,
		org.EmergencyFund,
		org.LongTermSavings,
		org.LongTermTarget,
		org.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrganizationNotFound
	}

	return nil
}
