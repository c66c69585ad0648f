package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/debtwise/debtwise/internal/adapter/http/handler"
	"github.com/debtwise/debtwise/internal/domain"
	"github.com/debtwise/debtwise/internal/infrastructure/auth"
	"github.com/debtwise/debtwise/internal/usecase"
)

type debtServiceStub struct{}

func (s *debtServiceStub) CreateDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error) {
	return nil, nil
}

func (s *debtServiceStub) GetDebt(ctx context.Context, orgID, id string) (*domain.Debt, error) {
	return nil, domain.ErrDebtNotFound
}

func (s *debtServiceStub) ListDebts(ctx context.Context, orgID string, limit, offset int) ([]domain.Debt, error) {
	return nil, nil
}

func (s *debtServiceStub) UpdateDebt(ctx context.Context, input usecase.UpdateDebtInput) (*domain.Debt, error) {
	return nil, nil
}

func (s *debtServiceStub) MarkPaid(ctx context.Context, orgID, id string) error { return nil }

func (s *debtServiceStub) DeleteDebt(ctx context.Context, orgID, id string) error { return nil }

func (s *debtServiceStub) Reorder(ctx context.Context, orgID string) ([]domain.Debt, error) {
	return nil, nil
}

func (s *debtServiceStub) EstimatePayoff(ctx context.Context, orgID, id string) (int, bool, error) {
	return 0, false, nil
}

func newTestRouter() (http.Handler, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	cfg := RouterConfig{
		DebtHandler:   handler.NewDebtHandler(&debtServiceStub{}),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		JWTManager:    jwtManager,
	}

	return NewRouter(cfg), jwtManager
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_APIRequiresToken(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewRouter_APIAcceptsSignedToken(t *testing.T) {
	router, jwtManager := newTestRouter()

	token, err := jwtManager.Generate(&domain.User{
		ID:             "user-1",
		OrganizationID: "org-1",
		Email:          "owner@example.com",
		Role:           domain.RoleOwner,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/debts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := resp["debts"]; !ok {
		t.Fatalf("expected debts listing, got %v", resp)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router, _ := newTestRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}
