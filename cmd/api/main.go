// Package main is the entry point for the personal finance dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/MuriloKuehne/personal-finance-dashboard/config"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/auth"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/category"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/dashboard"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/offline"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/settings"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/transaction"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/infra/db"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/infra/server/router"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/adapters"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/controller"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/middleware"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/persistence"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/persistence/model"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/queue"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting personal finance dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	dashboardRepo := persistence.NewDashboardRepository(database.DB())

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Settings use cases
	getProfileUseCase := settings.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := settings.NewUpdateProfileUseCase(userRepo)

	// Dashboard use cases
	statsUseCase := dashboard.NewGetDashboardStatsUseCase(dashboardRepo)
	monthlySummaryUseCase := dashboard.NewGetMonthlySummaryUseCase(dashboardRepo)
	weeklySummaryUseCase := dashboard.NewGetWeeklySummaryUseCase(dashboardRepo)
	breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(dashboardRepo, categoryRepo)
	overviewUseCase := dashboard.NewGetOverviewUseCase(
		statsUseCase,
		monthlySummaryUseCase,
		weeklySummaryUseCase,
		transactionRepo,
	)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	dashboardController := controller.NewDashboardController(
		statsUseCase,
		monthlySummaryUseCase,
		weeklySummaryUseCase,
		breakdownUseCase,
		overviewUseCase,
	)
	settingsController := controller.NewSettingsController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	// Offline queue. Redis is optional: without it the queue endpoints are
	// not registered and the API runs online-only.
	var offlineController *controller.OfflineController
	var replayWorker *queue.Worker

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Warn("Redis unavailable, offline action queue disabled", "error", err)
	} else {
		actionQueue := queue.NewRedisActionQueue(redisClient)
		enqueueUseCase := offline.NewEnqueueActionUseCase(actionQueue)
		listActionsUseCase := offline.NewListActionsUseCase(actionQueue)
		clearActionsUseCase := offline.NewClearActionsUseCase(actionQueue)
		replayUseCase := offline.NewReplayActionsUseCase(actionQueue, createTransactionUseCase, logger)

		offlineController = controller.NewOfflineController(
			enqueueUseCase,
			listActionsUseCase,
			clearActionsUseCase,
		)

		if cfg.Offline.WorkerEnabled {
			replayWorker = queue.NewWorker(actionQueue, replayUseCase, queue.WorkerConfig{
				PollInterval: cfg.Offline.PollInterval,
			})
		}
	}

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		dashboardController,
		settingsController,
		offlineController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if replayWorker != nil {
		go replayWorker.Start(workerCtx)
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
