package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

type planServiceStub struct {
	disposableFn func(ctx context.Context, orgID string) (*usecase.DisposableIncome, error)
	scheduleFn   func(ctx context.Context, orgID string) (*domain.PaymentSchedule, *usecase.DisposableIncome, error)
	projectionFn func(ctx context.Context, orgID string) (*domain.Projection, error)
}

func (s *planServiceStub) ComputeDisposableIncome(ctx context.Context, orgID string) (*usecase.DisposableIncome, error) {
	return s.disposableFn(ctx, orgID)
}

func (s *planServiceStub) PaymentSchedule(ctx context.Context, orgID string) (*domain.PaymentSchedule, *usecase.DisposableIncome, error) {
	return s.scheduleFn(ctx, orgID)
}

func (s *planServiceStub) Projection(ctx context.Context, orgID string) (*domain.Projection, error) {
	return s.projectionFn(ctx, orgID)
}

func TestPlanHandler_Schedule_SerializesMoneyAsFixedStrings(t *testing.T) {
	income := &usecase.DisposableIncome{
		TotalIncome:    decimal.NewFromInt(2811),
		TotalExpenses:  decimal.NewFromInt(1486),
		TaperDeduction: decimal.NewFromInt(825),
		Disposable:     decimal.NewFromInt(500),
	}
	schedule := &domain.PaymentSchedule{
		Entries: []domain.PaymentScheduleEntry{
			{DebtID: "debt-1", DebtName: "Store card", SnowballPosition: 1, MinimumPayment: decimal.NewFromInt(50), MonthlyPayment: decimal.NewFromInt(325)},
			{DebtID: "debt-2", DebtName: "Loan", SnowballPosition: 2, MinimumPayment: decimal.NewFromInt(175), MonthlyPayment: decimal.NewFromInt(175)},
		},
		TotalMonthlyPayment: decimal.NewFromInt(500),
	}

	handler := NewPlanHandler(&planServiceStub{
		scheduleFn: func(ctx context.Context, orgID string) (*domain.PaymentSchedule, *usecase.DisposableIncome, error) {
			return schedule, income, nil
		},
	})

	req := authedRequest(http.MethodGet, "/plan/schedule", nil)
	rec := httptest.NewRecorder()

	handler.Schedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PaymentScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalMonthlyPayment != "500.00" {
		t.Fatalf("expected total 500.00, got %s", resp.TotalMonthlyPayment)
	}
	if resp.Underfunded {
		t.Fatal("expected schedule to be funded")
	}
	if resp.Entries[0].MonthlyPayment != "325.00" {
		t.Fatalf("expected focused payment 325.00, got %s", resp.Entries[0].MonthlyPayment)
	}
	if resp.Income.TaperDeduction != "825.00" {
		t.Fatalf("expected taper 825.00, got %s", resp.Income.TaperDeduction)
	}
}

func TestPlanHandler_Schedule_Underfunded(t *testing.T) {
	income := &usecase.DisposableIncome{Disposable: decimal.NewFromInt(100)}
	schedule := &domain.PaymentSchedule{
		Entries: []domain.PaymentScheduleEntry{
			{DebtID: "debt-1", MinimumPayment: decimal.NewFromInt(225), MonthlyPayment: decimal.NewFromInt(225)},
		},
		TotalMonthlyPayment: decimal.NewFromInt(225),
	}

	handler := NewPlanHandler(&planServiceStub{
		scheduleFn: func(ctx context.Context, orgID string) (*domain.PaymentSchedule, *usecase.DisposableIncome, error) {
			return schedule, income, nil
		},
	})

	req := authedRequest(http.MethodGet, "/plan/schedule", nil)
	rec := httptest.NewRecorder()

	handler.Schedule(rec, req)

	var resp dto.PaymentScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Underfunded {
		t.Fatal("expected schedule to be flagged underfunded")
	}
}

func TestPlanHandler_Projection_Feasible(t *testing.T) {
	date := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	months := 7
	projection := &domain.Projection{
		DebtFreeDate:     &date,
		MonthsToDebtFree: &months,
		Schedule:         [][]domain.MonthlyProjectionEntry{},
	}

	handler := NewPlanHandler(&planServiceStub{
		projectionFn: func(ctx context.Context, orgID string) (*domain.Projection, error) {
			return projection, nil
		},
	})

	req := authedRequest(http.MethodGet, "/plan/projection", nil)
	rec := httptest.NewRecorder()

	handler.Projection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Feasible {
		t.Fatal("expected feasible projection")
	}
	if resp.DebtFreeDate == nil || *resp.DebtFreeDate != "2027-03-01" {
		t.Fatalf("unexpected debt-free date: %v", resp.DebtFreeDate)
	}
	if resp.MonthsToDebtFree == nil || *resp.MonthsToDebtFree != 7 {
		t.Fatalf("unexpected months: %v", resp.MonthsToDebtFree)
	}
}

func TestPlanHandler_Projection_Infeasible(t *testing.T) {
	handler := NewPlanHandler(&planServiceStub{
		projectionFn: func(ctx context.Context, orgID string) (*domain.Projection, error) {
			return &domain.Projection{}, nil
		},
	})

	req := authedRequest(http.MethodGet, "/plan/projection", nil)
	rec := httptest.NewRecorder()

	handler.Projection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for infeasible plan, got %d", rec.Code)
	}

	var resp dto.ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Feasible {
		t.Fatal("expected infeasible projection")
	}
	if resp.DebtFreeDate != nil || resp.MonthsToDebtFree != nil {
		t.Fatalf("expected null date and months, got %+v", resp)
	}
}
