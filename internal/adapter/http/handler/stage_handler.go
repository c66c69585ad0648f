package handler

import (
	"context"
	"net/http"

	"github.com/debtwise/debtwise/internal/adapter/http/dto"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/usecase"
)

// StageService defines the behavior needed by StageHandler.
type StageService interface {
	Evaluate(ctx context.Context, orgID string) (*usecase.StageResult, error)
}

// StageHandler serves the financial progress tracker endpoints.
type StageHandler struct {
	stageUC StageService
}

// NewStageHandler creates a new StageHandler.
func NewStageHandler(stageUC StageService) *StageHandler {
	return &StageHandler{stageUC: stageUC}
}

// Current evaluates and returns the organization's current stage.
func (h *StageHandler) Current(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	result, err := h.stageUC.Evaluate(r.Context(), orgID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to evaluate stage", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StageFromUseCase(result))
}

// List returns the seven stage definitions.
func (h *StageHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stages": dto.StagesFromDomain(domain.Stages()),
	})
}
