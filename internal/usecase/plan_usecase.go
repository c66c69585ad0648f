package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/snowball"
)

// DisposableIncome is the monthly surplus available for debt repayment,
// broken down for the caller.
type DisposableIncome struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	TaperDeduction decimal.Decimal
	Disposable     decimal.Decimal
}

// PlanUseCase drives the snowball engine from an organization's records:
// disposable income, the monthly payment schedule, and the debt-free-date
// projection. Projections are memoized per organization; record mutations
// elsewhere invalidate the memo.
type PlanUseCase struct {
	debtRepo    DebtRepository
	incomeRepo  IncomeRepository
	expenseRepo ExpenseRepository
	benefit     *BenefitUseCase
	cache       Cache
	// now is injectable for deterministic tests.
	now func() time.Time
}

// NewPlanUseCase creates a new PlanUseCase.
func NewPlanUseCase(debtRepo DebtRepository, incomeRepo IncomeRepository, expenseRepo ExpenseRepository, benefit *BenefitUseCase, cache Cache) *PlanUseCase {
	return &PlanUseCase{
		debtRepo:    debtRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		benefit:     benefit,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ComputeDisposableIncome derives the monthly surplus: income minus expenses
// minus the Universal Credit taper deduction on earned income.
func (uc *PlanUseCase) ComputeDisposableIncome(ctx context.Context, orgID string) (*DisposableIncome, error) {
	incomes, err := uc.incomeRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	earned := decimal.Zero
	benefitAward := decimal.Zero
	for i := range incomes {
		monthly, err := domain.MonthlyAmount(incomes[i].Amount, incomes[i].Frequency)
		if err != nil {
			return nil, err
		}
		totalIncome = totalIncome.Add(monthly)
		if incomes[i].Earned {
			earned = earned.Add(monthly)
		} else {
			benefitAward = benefitAward.Add(monthly)
		}
	}

	totalExpenses := decimal.Zero
	for i := range expenses {
		monthly, err := domain.MonthlyAmount(expenses[i].Amount, expenses[i].Frequency)
		if err != nil {
			return nil, err
		}
		totalExpenses = totalExpenses.Add(monthly)
	}

	deduction := uc.benefit.MonthlyDeduction(earned, benefitAward)

	return &DisposableIncome{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		TaperDeduction: deduction,
		Disposable:     totalIncome.Sub(totalExpenses).Sub(deduction),
	}, nil
}

// PaymentSchedule produces the current month's allocation across the
// organization's active debts in snowball order.
func (uc *PlanUseCase) PaymentSchedule(ctx context.Context, orgID string) (*domain.PaymentSchedule, *DisposableIncome, error) {
	income, err := uc.ComputeDisposableIncome(ctx, orgID)
	if err != nil {
		return nil, nil, err
	}

	debts, err := uc.debtRepo.ListActive(ctx, orgID)
	if err != nil {
		return nil, nil, err
	}

	schedule := snowball.MonthlyPayments(snowball.Order(debts), income.Disposable)
	return &schedule, income, nil
}

// Projection runs the full debt-free-date simulation, serving a memoized
// result when the organization's records have not changed since it was
// computed.
func (uc *PlanUseCase) Projection(ctx context.Context, orgID string) (*domain.Projection, error) {
	key := projectionCacheKey(orgID)
	if cached, err := uc.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		var p domain.Projection
		if err := json.Unmarshal(cached, &p); err == nil {
			return &p, nil
		}
		// Corrupt entry: fall through and recompute.
	}

	income, err := uc.ComputeDisposableIncome(ctx, orgID)
	if err != nil {
		return nil, err
	}

	debts, err := uc.debtRepo.ListActive(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ordered := snowball.Order(debts)
	projection := snowball.ProjectDebtFreeDate(ordered, income.Disposable, uc.now())

	if encoded, err := json.Marshal(&projection); err == nil {
		_ = uc.cache.Set(ctx, key, encoded, ProjectionCacheTTL)
	}

	return &projection, nil
}

// InvalidateProjection drops the memoized projection for an organization.
// Income and expense mutations call this.
func (uc *PlanUseCase) InvalidateProjection(ctx context.Context, orgID string) {
	_ = uc.cache.Delete(ctx, projectionCacheKey(orgID))
}
