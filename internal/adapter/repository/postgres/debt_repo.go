package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// DebtRepository implements debt persistence
type DebtRepository struct {
	pool *pgxpool.Pool
}

// NewDebtRepository creates a new debt repository
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

const debtColumns = `id, organization_id, name, balance, annual_rate_percent,
       minimum_payment, is_ccj, ccj_deadline, status, snowball_position,
       created_at, updated_at`

// Create inserts a new debt
func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	query := `
		INSERT INTO debts (
			id, organization_id, name, balance, annual_rate_percent,
			minimum_payment, is_ccj, ccj_deadline, status, snowball_position,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		debt.ID,
		debt.OrganizationID,
		debt.Name,
		debt.Balance,
		debt.AnnualRatePercent,
		debt.MinimumPayment,
		debt.IsCCJ,
		debt.CCJDeadline,
		debt.Status,
		debt.SnowballPosition,
		debt.CreatedAt,
		debt.UpdatedAt,
	)

	return err
}

// GetByID retrieves a debt scoped to an organization
func (r *DebtRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE organization_id = $1 AND id = $2
	`

	debt, err := scanDebt(r.pool.QueryRow(ctx, query, orgID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}
		return nil, err
	}

	return debt, nil
}

// ListActive retrieves all active debts for an organization in snowball order
func (r *DebtRepository) ListActive(ctx context.Context, orgID string) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE organization_id = $1 AND status = $2
		ORDER BY snowball_position, created_at
	`

	rows, err := r.pool.Query(ctx, query, orgID, domain.DebtStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDebts(rows)
}

// List retrieves debts for an organization with pagination
func (r *DebtRepository) List(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE organization_id = $1
		ORDER BY status, snowball_position, created_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDebts(rows)
}

// Update rewrites the mutable fields of a debt
func (r *DebtRepository) Update(ctx context.Context, debt *domain.Debt) error {
	query := `
		UPDATE debts
		SET name = $3, balance = $4, annual_rate_percent = $5,
		    minimum_payment = $6, is_ccj = $7, ccj_deadline = $8,
		    updated_at = $9
		WHERE organization_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		debt.OrganizationID,
		debt.ID,
		debt.Name,
		debt.Balance,
		debt.AnnualRatePercent,
		debt.MinimumPayment,
		debt.IsCCJ,
		debt.CCJDeadline,
		debt.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// UpdatePositionTx persists a debt's snowball position within a transaction
func (r *DebtRepository) UpdatePositionTx(ctx context.Context, tx usecase.Transaction, orgID, id string, position int, updatedAt time.Time) error {
	pgxTx, ok := tx.(*Tx)
	if !ok {
		return errors.New("transaction is not a postgres transaction")
	}

	query := `
		UPDATE debts
		SET snowball_position = $3, updated_at = $4
		WHERE organization_id = $1 AND id = $2
	`

	tag, err := pgxTx.PgxTx().Exec(ctx, query, orgID, id, position, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// UpdateStatus changes a debt's lifecycle status
func (r *DebtRepository) UpdateStatus(ctx context.Context, orgID, id string, status domain.DebtStatus, updatedAt time.Time) error {
	query := `
		UPDATE debts
		SET status = $3, updated_at = $4
		WHERE organization_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query, orgID, id, status, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

// Delete removes a debt
func (r *DebtRepository) Delete(ctx context.Context, orgID, id string) error {
	query := `DELETE FROM debts WHERE organization_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var debt domain.Debt
	err := row.Scan(
		&debt.ID,
		&debt.OrganizationID,
		&debt.Name,
		&debt.Balance,
		&debt.AnnualRatePercent,
		&debt.MinimumPayment,
		&debt.IsCCJ,
		&debt.CCJDeadline,
		&debt.Status,
		&debt.SnowballPosition,
		&debt.CreatedAt,
		&debt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &debt, nil
}

func collectDebts(rows pgx.Rows) ([]domain.Debt, error) {
	var debts []domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, *debt)
	}

	return debts, rows.Err()
}
