package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
)

// FinanceUseCase manages the income and expense records feeding the
// disposable-income calculation. Mutations invalidate the organization's
// memoized projection.
type FinanceUseCase struct {
	incomeRepo  IncomeRepository
	expenseRepo ExpenseRepository
	idGen       IDGenerator
	cache       Cache
}

// NewFinanceUseCase creates a new FinanceUseCase.
func NewFinanceUseCase(incomeRepo IncomeRepository, expenseRepo ExpenseRepository, idGen IDGenerator, cache Cache) *FinanceUseCase {
	return &FinanceUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateIncomeInput represents input for creating an income record.
type CreateIncomeInput struct {
	OrganizationID string
	Name           string
	Amount         decimal.Decimal
	Frequency      domain.Frequency
	Earned         bool
}

// CreateIncome validates and persists a new income record.
func (uc *FinanceUseCase) CreateIncome(ctx context.Context, input CreateIncomeInput) (*domain.Income, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	income := &domain.Income{
		ID:             uc.idGen.Generate(),
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Amount:         input.Amount,
		Frequency:      input.Frequency,
		Earned:         input.Earned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := income.Validate(); err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	uc.invalidateProjection(ctx, input.OrganizationID)
	return income, nil
}

// ListIncomes lists an organization's income records.
func (uc *FinanceUseCase) ListIncomes(ctx context.Context, orgID string) ([]domain.Income, error) {
	return uc.incomeRepo.ListByOrganization(ctx, orgID)
}

// DeleteIncome removes an income record.
func (uc *FinanceUseCase) DeleteIncome(ctx context.Context, orgID, id string) error {
	if err := uc.incomeRepo.Delete(ctx, orgID, id); err != nil {
		return err
	}
	uc.invalidateProjection(ctx, orgID)
	return nil
}

// CreateExpenseInput represents input for creating an expense record.
type CreateExpenseInput struct {
	OrganizationID string
	Name           string
	Amount         decimal.Decimal
	Frequency      domain.Frequency
}

// CreateExpense validates and persists a new expense record.
func (uc *FinanceUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := &domain.Expense{
		ID:             uc.idGen.Generate(),
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Amount:         input.Amount,
		Frequency:      input.Frequency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.invalidateProjection(ctx, input.OrganizationID)
	return expense, nil
}

// ListExpenses lists an organization's expense records.
func (uc *FinanceUseCase) ListExpenses(ctx context.Context, orgID string) ([]domain.Expense, error) {
	return uc.expenseRepo.ListByOrganization(ctx, orgID)
}

// DeleteExpense removes an expense record.
func (uc *FinanceUseCase) DeleteExpense(ctx context.Context, orgID, id string) error {
	if err := uc.expenseRepo.Delete(ctx, orgID, id); err != nil {
		return err
	}
	uc.invalidateProjection(ctx, orgID)
	return nil
}

func (uc *FinanceUseCase) invalidateProjection(ctx context.Context, orgID string) {
	_ = uc.cache.Delete(ctx, projectionCacheKey(orgID))
}
