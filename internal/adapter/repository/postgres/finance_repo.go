package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/debtwise/debtwise/internal/domain"
)

// IncomeRepository implements income persistence
type IncomeRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

// Create inserts a new income record
func (r *IncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	query := `
		INSERT INTO incomes (id, organization_id, name, amount, frequency, earned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		income.ID,
		income.OrganizationID,
		income.Name,
		income.Amount,
		income.Frequency,
		income.Earned,
		income.CreatedAt,
		income.UpdatedAt,
	)

	return err
}

// ListByOrganization retrieves all income records for an organization
func (r *IncomeRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Income, error) {
	query := `
		SELECT id, organization_id, name, amount, frequency, earned, created_at, updated_at
		FROM incomes
		WHERE organization_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []domain.Income
	for rows.Next() {
		var income domain.Income
		if err := rows.Scan(
			&income.ID,
			&income.OrganizationID,
			&income.Name,
			&income.Amount,
			&income.Frequency,
			&income.Earned,
			&income.CreatedAt,
			&income.UpdatedAt,
		); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}

	return incomes, rows.Err()
}

// Delete removes an income record
func (r *IncomeRepository) Delete(ctx context.Context, orgID, id string) error {
	query := `DELETE FROM incomes WHERE organization_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIncomeNotFound
	}

	return nil
}

// ExpenseRepository implements expense persistence
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create inserts a new expense record
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, organization_id, name, amount, frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.OrganizationID,
		expense.Name,
		expense.Amount,
		expense.Frequency,
		expense.CreatedAt,
		expense.UpdatedAt,
	)

	return err
}

// ListByOrganization retrieves all expense records for an organization
func (r *ExpenseRepository) ListByOrganization(ctx context.Context, orgID string) ([]domain.Expense, error) {
	query := `
		SELECT id, organization_id, name, amount, frequency, created_at, updated_at
		FROM expenses
		WHERE organization_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectExpenses(rows)
}

// Delete removes an expense record
func (r *ExpenseRepository) Delete(ctx context.Context, orgID, id string) error {
	query := `DELETE FROM expenses WHERE organization_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

func collectExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.OrganizationID,
			&expense.Name,
			&expense.Amount,
			&expense.Frequency,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}
