package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
)

// StageUseCase evaluates the seven-stage financial progress tracker from an
// organization's current records.
type StageUseCase struct {
	orgRepo     OrganizationRepository
	debtRepo    DebtRepository
	expenseRepo ExpenseRepository
	plan        *PlanUseCase
}

// NewStageUseCase creates a new StageUseCase.
func NewStageUseCase(orgRepo OrganizationRepository, debtRepo DebtRepository, expenseRepo ExpenseRepository, plan *PlanUseCase) *StageUseCase {
	return &StageUseCase{
		orgRepo:     orgRepo,
		debtRepo:    debtRepo,
		expenseRepo: expenseRepo,
		plan:        plan,
	}
}

// StageResult is the tracker outcome with the snapshot it was derived from.
type StageResult struct {
	Stage domain.Stage
	Input domain.StageInput
}

// Evaluate derives the organization's current stage.
func (uc *StageUseCase) Evaluate(ctx context.Context, orgID string) (*StageResult, error) {
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	debts, err := uc.debtRepo.ListActive(ctx, orgID)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	income, err := uc.plan.ComputeDisposableIncome(ctx, orgID)
	if err != nil {
		return nil, err
	}

	monthlyExpenses := decimal.Zero
	for i := range expenses {
		monthly, err := domain.MonthlyAmount(expenses[i].Amount, expenses[i].Frequency)
		if err != nil {
			return nil, err
		}
		monthlyExpenses = monthlyExpenses.Add(monthly)
	}

	ccjCount := 0
	for i := range debts {
		if debts[i].IsCCJ {
			ccjCount++
		}
	}

	input := domain.StageInput{
		EmergencyFund:   org.EmergencyFund,
		MonthlyExpenses: monthlyExpenses,
		MonthlySurplus:  income.Disposable,
		ActiveCCJDebts:  ccjCount,
		ActiveDebts:     len(debts),
		LongTermSavings: org.LongTermSavings,
		LongTermTarget:  org.LongTermTarget,
	}

	return &StageResult{
		Stage: domain.CurrentStage(input),
		Input: input,
	}, nil
}
