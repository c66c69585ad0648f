package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// FinanceService defines the behavior needed by FinanceHandler.
type FinanceService interface {
	CreateIncome(ctx context.Context, input usecase.CreateIncomeInput) (*domain.Income, error)
	ListIncomes(ctx context.Context, orgID string) ([]domain.Income, error)
	DeleteIncome(ctx context.Context, orgID, id string) error
	CreateExpense(ctx context.Context, input usecase.CreateExpenseInput) (*domain.Expense, error)
	ListExpenses(ctx context.Context, orgID string) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, orgID, id string) error
}

// FinanceHandler handles income and expense HTTP requests.
type FinanceHandler struct {
	financeUC FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeUC FinanceService) *FinanceHandler {
	return &FinanceHandler{financeUC: financeUC}
}

// CreateIncome creates a new income record.
func (h *FinanceHandler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	income, err := h.financeUC.CreateIncome(r.Context(), req.ToUseCaseInput(orgID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create income", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(income))
}

// ListIncomes lists the organization's income records.
func (h *FinanceHandler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	incomes, err := h.financeUC.ListIncomes(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list incomes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"incomes": dto.IncomesFromDomain(incomes)})
}

// DeleteIncome removes an income record.
func (h *FinanceHandler) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.financeUC.DeleteIncome(r.Context(), orgID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete income", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateExpense creates a new expense record.
func (h *FinanceHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.financeUC.CreateExpense(r.Context(), req.ToUseCaseInput(orgID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// ListExpenses lists the organization's expense records.
func (h *FinanceHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	expenses, err := h.financeUC.ListExpenses(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"expenses": dto.ExpensesFromDomain(expenses)})
}

// DeleteExpense removes an expense record.
func (h *FinanceHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.financeUC.DeleteExpense(r.Context(), orgID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete expense", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
