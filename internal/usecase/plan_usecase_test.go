package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
	"github.com/debtwise/debtwise/internal/usecase/mocks"
)

func seedPlanFixtures(t *testing.T, debtRepo *mocks.MockDebtRepository, incomeRepo *mocks.MockIncomeRepository, expenseRepo *mocks.MockExpenseRepository) {
	t.Helper()
	ctx := context.Background()

	debts := []domain.Debt{
		{ID: "d1", OrganizationID: testOrg, Name: "card", Balance: decimal.NewFromInt(300),
			MinimumPayment: decimal.NewFromInt(75), Status: domain.DebtStatusActive},
		{ID: "d2", OrganizationID: testOrg, Name: "loan", Balance: decimal.NewFromInt(800),
			MinimumPayment: decimal.NewFromInt(100), Status: domain.DebtStatusActive},
		{ID: "d3", OrganizationID: testOrg, Name: "overdraft", Balance: decimal.NewFromInt(1500),
			MinimumPayment: decimal.NewFromInt(50), Status: domain.DebtStatusActive},
	}
	for i := range debts {
		if err := debtRepo.Create(ctx, &debts[i]); err != nil {
			t.Fatalf("seed debt: %v", err)
		}
	}

	// 1911 earned income: 1500 above the 411 work allowance tapers 825 off
	// the 900 award. 2811 total in, 1486 out, 825 taper -> 500 disposable.
	incomes := []domain.Income{
		{ID: "i1", OrganizationID: testOrg, Name: "salary", Amount: decimal.NewFromInt(1911),
			Frequency: domain.FrequencyMonthly, Earned: true},
		{ID: "i2", OrganizationID: testOrg, Name: "universal credit", Amount: decimal.NewFromInt(900),
			Frequency: domain.FrequencyMonthly},
	}
	for i := range incomes {
		if err := incomeRepo.Create(ctx, &incomes[i]); err != nil {
			t.Fatalf("seed income: %v", err)
		}
	}

	expense := domain.Expense{ID: "e1", OrganizationID: testOrg, Name: "rent and bills",
		Amount: decimal.NewFromInt(1486), Frequency: domain.FrequencyMonthly}
	if err := expenseRepo.Create(ctx, &expense); err != nil {
		t.Fatalf("seed expense: %v", err)
	}
}

func TestPlanUseCase_ComputeDisposableIncome(t *testing.T) {
	debtRepo := mocks.NewMockDebtRepository()
	incomeRepo := mocks.NewMockIncomeRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	seedPlanFixtures(t, debtRepo, incomeRepo, expenseRepo)

	uc := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, usecase.NewBenefitUseCase(), mocks.NewMemoryCache())

	income, err := uc.ComputeDisposableIncome(context.Background(), testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !income.TotalIncome.Equal(decimal.NewFromInt(2811)) {
		t.Errorf("total income: want 2811, got %s", income.TotalIncome)
	}
	if !income.TaperDeduction.Equal(decimal.NewFromInt(825)) {
		t.Errorf("taper deduction: want 825, got %s", income.TaperDeduction)
	}
	if !income.Disposable.Equal(decimal.NewFromInt(500)) {
		t.Errorf("disposable: want 500, got %s", income.Disposable)
	}
}

func TestPlanUseCase_PaymentSchedule(t *testing.T) {
	debtRepo := mocks.NewMockDebtRepository()
	incomeRepo := mocks.NewMockIncomeRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	seedPlanFixtures(t, debtRepo, incomeRepo, expenseRepo)

	uc := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, usecase.NewBenefitUseCase(), mocks.NewMemoryCache())

	schedule, income, err := uc.PaymentSchedule(context.Background(), testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Disposable 500 over minimums totalling 225: the focused debt takes its
	// minimum plus the 275 surplus.
	if !schedule.TotalMonthlyPayment.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total payment: want 500, got %s", schedule.TotalMonthlyPayment)
	}
	if len(schedule.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(schedule.Entries))
	}
	focused := schedule.Entries[0]
	want := focused.MinimumPayment.Add(decimal.NewFromInt(275))
	if !focused.MonthlyPayment.Equal(want) {
		t.Errorf("focused payment: want %s, got %s", want, focused.MonthlyPayment)
	}
	if schedule.Underfunded(income.Disposable) {
		t.Error("schedule should not be underfunded")
	}
}

func TestPlanUseCase_ProjectionMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	debtRepo := mocks.NewMockDebtRepository()
	incomeRepo := mocks.NewMockIncomeRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	seedPlanFixtures(t, debtRepo, incomeRepo, expenseRepo)

	cache := mocks.NewMockCache(ctrl)
	uc := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, usecase.NewBenefitUseCase(), cache)

	key := "projection:" + testOrg

	// First call misses the cache, computes, and stores the result.
	var stored []byte
	cache.EXPECT().Get(gomock.Any(), key).Return(nil, context.Canceled)
	cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), usecase.ProjectionCacheTTL).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			stored = value
			return nil
		})

	first, err := uc.Projection(context.Background(), testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Feasible() {
		t.Fatal("projection should be feasible")
	}

	// Second call is served from the memo without recomputing.
	cache.EXPECT().Get(gomock.Any(), key).Return(stored, nil)

	second, err := uc.Projection(context.Background(), testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *second.MonthsToDebtFree != *first.MonthsToDebtFree {
		t.Errorf("memoized projection diverged: %d vs %d",
			*second.MonthsToDebtFree, *first.MonthsToDebtFree)
	}
}

func TestPlanUseCase_ProjectionRoundTripsThroughJSON(t *testing.T) {
	debtRepo := mocks.NewMockDebtRepository()
	incomeRepo := mocks.NewMockIncomeRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	seedPlanFixtures(t, debtRepo, incomeRepo, expenseRepo)

	cache := mocks.NewMemoryCache()
	uc := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, usecase.NewBenefitUseCase(), cache)

	first, err := uc.Projection(context.Background(), testOrg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, err := cache.Get(context.Background(), "projection:"+testOrg)
	if err != nil {
		t.Fatalf("projection was not cached: %v", err)
	}
	var decoded domain.Projection
	if err := json.Unmarshal(cached, &decoded); err != nil {
		t.Fatalf("cached projection does not decode: %v", err)
	}
	if len(decoded.Schedule) != len(first.Schedule) {
		t.Errorf("schedule length changed through cache: %d vs %d",
			len(decoded.Schedule), len(first.Schedule))
	}
}
