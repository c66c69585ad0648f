package handler

import (
	"context"
	"net/http"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/infrastructure/metrics"
	"github.com/debtwise/debtwise/internal/usecase"
)

// PlanService defines the behavior needed by PlanHandler.
type PlanService interface {
	ComputeDisposableIncome(ctx context.Context, orgID string) (*usecase.DisposableIncome, error)
	PaymentSchedule(ctx context.Context, orgID string) (*domain.PaymentSchedule, *usecase.DisposableIncome, error)
	Projection(ctx context.Context, orgID string) (*domain.Projection, error)
}

// PlanHandler serves the repayment plan endpoints.
type PlanHandler struct {
	planUC PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planUC PlanService) *PlanHandler {
	return &PlanHandler{planUC: planUC}
}

// DisposableIncome returns the organization's monthly surplus breakdown.
func (h *PlanHandler) DisposableIncome(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	income, err := h.planUC.ComputeDisposableIncome(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute disposable income", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DisposableIncomeFromUseCase(income))
}

// Schedule returns the current month's payment allocation.
func (h *PlanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	schedule, income, err := h.planUC.PaymentSchedule(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute schedule", err.Error())
		return
	}

	metrics.Default().SchedulesComputed.Inc()
	writeJSON(w, http.StatusOK, dto.PaymentScheduleFromDomain(schedule, income))
}

// Projection returns the full debt-free-date simulation.
func (h *PlanHandler) Projection(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	projection, err := h.planUC.Projection(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute projection", err.Error())
		return
	}

	m := metrics.Default()
	m.ProjectionsComputed.Inc()
	if projection.Feasible() {
		m.ProjectionMonths.Observe(float64(*projection.MonthsToDebtFree))
	} else {
		m.ProjectionInfeasible.Inc()
	}

	writeJSON(w, http.StatusOK, dto.ProjectionFromDomain(projection))
}
