package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/adapter/http/middleware"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/infrastructure/metrics"
	"github.com/debtwise/debtwise/internal/usecase"
)

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	CreateDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error)
	GetDebt(ctx context.Context, orgID, id string) (*domain.Debt, error)
	ListDebts(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error)
	UpdateDebt(ctx context.Context, input usecase.UpdateDebtInput) (*domain.Debt, error)
	MarkPaid(ctx context.Context, orgID, id string) error
	DeleteDebt(ctx context.Context, orgID, id string) error
	Reorder(ctx context.Context, orgID string) ([]domain.Debt, error)
	EstimatePayoff(ctx context.Context, orgID, id string) (int, bool, error)
}

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debtUC DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC DebtService) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

func orgFromRequest(r *http.Request) (string, bool) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		return "", false
	}
	return user.OrganizationID, true
}

// Create creates a new debt.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.CreateDebt(r.Context(), req.ToUseCaseInput(orgID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create debt", err.Error())
		return
	}

	metrics.Default().DebtsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Get retrieves a debt by ID.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	debt, err := h.debtUC.GetDebt(r.Context(), orgID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// List lists the organization's debts in snowball order.
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	debts, err := h.debtUC.ListDebts(r.Context(), orgID, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDebtsResponse{
		Debts: dto.DebtsFromDomain(debts),
		Total: int64(len(debts)),
	})
}

// Update applies a partial update to a debt.
func (h *DebtHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")

	var req dto.UpdateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.UpdateDebt(r.Context(), req.ToUseCaseInput(orgID, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update debt", err.Error())
		return
	}

	metrics.Default().DebtOperation.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// MarkPaid marks a debt as fully paid.
func (h *DebtHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.debtUC.MarkPaid(r.Context(), orgID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to mark debt paid", err.Error())
		return
	}

	metrics.Default().DebtsPaidOff.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"status": "paid"})
}

// Delete removes a debt.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.debtUC.DeleteDebt(r.Context(), orgID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}

	metrics.Default().DebtOperation.WithLabelValues("delete").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Reorder recomputes snowball positions for the organization's active debts.
func (h *DebtHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	debts, err := h.debtUC.Reorder(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reorder debts", err.Error())
		return
	}

	metrics.Default().OrderingsComputed.Inc()
	writeJSON(w, http.StatusOK, dto.ListDebtsResponse{
		Debts: dto.DebtsFromDomain(debts),
		Total: int64(len(debts)),
	})
}

// EstimatePayoff reports how many months a debt takes to clear at its
// minimum payment.
func (h *DebtHandler) EstimatePayoff(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	months, feasible, err := h.debtUC.EstimatePayoff(r.Context(), orgID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to estimate payoff", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayoffEstimateResponse{
		DebtID:   id,
		Months:   months,
		Feasible: feasible,
	})
}
