package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/debtwise/debtwise/internal/adapter/http"
	"github.com/debtwise/debtwise/internal/adapter/http/handler"
	"github.com/debtwise/debtwise/internal/adapter/http/middleware"
	postgresRepo "github.com/debtwise/debtwise/internal/adapter/repository/postgres"
	redisRepo "github.com/debtwise/debtwise/internal/adapter/repository/redis"
	"github.com/debtwise/debtwise/internal/infrastructure/auth"
	"github.com/debtwise/debtwise/internal/infrastructure/config"
	"github.com/debtwise/debtwise/internal/infrastructure/logger"
	"github.com/debtwise/debtwise/internal/infrastructure/metrics"
	"github.com/debtwise/debtwise/internal/infrastructure/postgres"
	"github.com/debtwise/debtwise/internal/infrastructure/redis"
	"github.com/debtwise/debtwise/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	zerolog.DefaultContextLogger = &log.Logger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, "internal/infrastructure/postgres/migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Register metrics
	metrics.Default()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	debtRepo := postgresRepo.NewDebtRepository(pool)
	incomeRepo := postgresRepo.NewIncomeRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	orgRepo := postgresRepo.NewOrganizationRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	cache := redisRepo.NewCache(redisClient)

	// Authentication
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize use cases
	usecase.ProjectionCacheTTL = cfg.ProjectionCacheTTL
	benefitUC := usecase.NewBenefitUseCase()
	debtUC := usecase.NewDebtUseCase(debtRepo, txManager, retrier, idGen, cache)
	planUC := usecase.NewPlanUseCase(debtRepo, incomeRepo, expenseRepo, benefitUC, cache)
	financeUC := usecase.NewFinanceUseCase(incomeRepo, expenseRepo, idGen, cache)
	stageUC := usecase.NewStageUseCase(orgRepo, debtRepo, expenseRepo, planUC)
	userUC := usecase.NewUserUseCase(userRepo, orgRepo, idGen, jwtManager)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userUC)
	debtHandler := handler.NewDebtHandler(debtUC)
	financeHandler := handler.NewFinanceHandler(financeUC)
	planHandler := handler.NewPlanHandler(planUC)
	stageHandler := handler.NewStageHandler(stageUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:    authHandler,
		DebtHandler:    debtHandler,
		FinanceHandler: financeHandler,
		PlanHandler:    planHandler,
		StageHandler:   stageHandler,
		HealthHandler:  healthHandler,
		JWTManager:     jwtManager,
		Logging:        middleware.NewLoggingMiddleware(log.Logger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
