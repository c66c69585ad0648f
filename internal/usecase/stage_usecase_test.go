package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
	"github.com/debtwise/debtwise/internal/usecase/mocks"
)

func TestStageUseCase_Evaluate(t *testing.T) {
	ctx := context.Background()

	orgRepo := mocks.NewMockOrganizationRepository()
	debtRepo := mocks.NewMockDebtRepository()
	incomeRepo := mocks.NewMockIncomeRepository()
	expenseRepo := mocks.NewMockExpenseRepository()

	org := domain.Organization{
		ID:            testOrg,
		Name:          "household",
		EmergencyFund: decimal.NewFromInt(1500),
	}
	if err := orgRepo.Create(ctx, &org); err != nil {
		t.Fatalf("seed org: %v", err)
	}

	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ccj := domain.Debt{
		ID: "d1", OrganizationID: testOrg, Name: "ccj",
		Balance: decimal.NewFromInt(2000), MinimumPayment: decimal.NewFromInt(100),
		IsCCJ: true, CCJDeadline: &deadline, Status: domain.DebtStatusActive,
	}
	if err := debtRepo.Create(ctx, &ccj); err != nil {
		t.Fatalf("seed debt: %v", err)
	}

	salary := domain.Income{
		ID: "i1", OrganizationID: testOrg, Name: "salary",
		Amount: decimal.NewFromInt(2000), Frequency: domain.FrequencyMonthly, Earned: true,
	}
	if err := incomeRepo.Create(ctx, &salary); err != nil {
		t.Fatalf("seed income: %v", err)
	}
	rent := domain.Expense{
		ID: "e1", OrganizationID: testOrg, Name: "rent",
		Amount: decimal.NewFromInt(900), Frequency: domain.FrequencyMonthly,
	}
	if err := expenseRepo.Create(ctx, &rent); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	plan := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, usecase.NewBenefitUseCase(), mocks.NewMemoryCache())
	uc := usecase.NewStageUseCase(orgRepo, debtRepo, expenseRepo, plan)

	result, err := uc.Evaluate(ctx, testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Starter fund is in place but a CCJ debt is outstanding: stage 2.
	if result.Stage.Number != 2 {
		t.Errorf("expected stage 2, got %d (%s)", result.Stage.Number, result.Stage.Name)
	}
	if result.Input.ActiveCCJDebts != 1 || result.Input.ActiveDebts != 1 {
		t.Errorf("unexpected debt counts: %+v", result.Input)
	}

	// Clearing the debt moves the household on to building the full fund.
	if err := debtRepo.UpdateStatus(ctx, testOrg, "d1", domain.DebtStatusPaid, time.Now()); err != nil {
		t.Fatalf("update status: %v", err)
	}
	result, err = uc.Evaluate(ctx, testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Stage.Number != 4 {
		t.Errorf("expected stage 4, got %d (%s)", result.Stage.Number, result.Stage.Name)
	}
}

func TestStageUseCase_UnknownOrganization(t *testing.T) {
	plan := usecase.NewPlanUseCase(mocks.NewMockDebtRepository(), mocks.NewMockIncomeRepository(),
		mocks.NewMockExpenseRepository(), usecase.NewBenefitUseCase(), mocks.NewMemoryCache())
	uc := usecase.NewStageUseCase(mocks.NewMockOrganizationRepository(), mocks.NewMockDebtRepository(),
		mocks.NewMockExpenseRepository(), plan)

	if _, err := uc.Evaluate(context.Background(), "missing"); err != domain.ErrOrganizationNotFound {
		t.Errorf("expected ErrOrganizationNotFound, got %v", err)
	}
}
