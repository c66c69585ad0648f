package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/debtwise/debtwise/internal/adapter/http/handler"
	"github.com/debtwise/debtwise/internal/adapter/http/middleware"
	"github.com/debtwise/debtwise/internal/infrastructure/auth"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	DebtHandler    *handler.DebtHandler
	FinanceHandler *handler.FinanceHandler
	PlanHandler    *handler.PlanHandler
	StageHandler   *handler.StageHandler
	HealthHandler  *handler.HealthHandler
	JWTManager     *auth.JWTManager
	Logging        *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Everything else requires a token
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			// Debts
			r.Route("/debts", func(r chi.Router) {
				r.Post("/", cfg.DebtHandler.Create)
				r.Get("/", cfg.DebtHandler.List)
				r.Post("/reorder", cfg.DebtHandler.Reorder)
				r.Get("/{id}", cfg.DebtHandler.Get)
				r.Patch("/{id}", cfg.DebtHandler.Update)
				r.Delete("/{id}", cfg.DebtHandler.Delete)
				r.Post("/{id}/paid", cfg.DebtHandler.MarkPaid)
				r.Get("/{id}/payoff", cfg.DebtHandler.EstimatePayoff)
			})

			// Incomes and expenses
			r.Route("/incomes", func(r chi.Router) {
				r.Post("/", cfg.FinanceHandler.CreateIncome)
				r.Get("/", cfg.FinanceHandler.ListIncomes)
				r.Delete("/{id}", cfg.FinanceHandler.DeleteIncome)
			})
			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", cfg.FinanceHandler.CreateExpense)
				r.Get("/", cfg.FinanceHandler.ListExpenses)
				r.Delete("/{id}", cfg.FinanceHandler.DeleteExpense)
			})

			// Repayment plan
			r.Route("/plan", func(r chi.Router) {
				r.Get("/disposable-income", cfg.PlanHandler.DisposableIncome)
				r.Get("/schedule", cfg.PlanHandler.Schedule)
				r.Get("/projection", cfg.PlanHandler.Projection)
			})

			// Stage tracker
			r.Get("/stages", cfg.StageHandler.List)
			r.Get("/stages/current", cfg.StageHandler.Current)

			// Savings figures feeding the tracker, owner-only
			r.With(middleware.RequireOwner).Patch("/savings", cfg.AuthHandler.UpdateSavings)
		})
	})

	return r
}
