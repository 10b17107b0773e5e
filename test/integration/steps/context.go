// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/auth"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/category"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/dashboard"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/offline"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/settings"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/transaction"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/infra/server/router"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/adapters"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/controller"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/middleware"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/persistence"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/persistence/model"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/queue"
	"github.com/MuriloKuehne/personal-finance-dashboard/test/integration/mock"
)

const (
	testJWTSecret = "integration-test-secret"
	testPassword  = "Str0ngPassw0rd"
)

// migratedModels are the tables every scenario starts from.
var migratedModels = []any{
	&model.UserModel{},
	&model.RefreshTokenModel{},
	&model.CategoryModel{},
	&model.TransactionModel{},
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	accessToken  string
	refreshToken string
	userID       uuid.UUID

	// saved holds values captured from responses, substituted into later
	// requests via {name} placeholders.
	saved map[string]string

	replayUseCase *offline.ReplayActionsUseCase
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		})))
	})
}

// InitializeScenario registers hooks and all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb(migratedModels...)
		if err := mock.ClearDb(db, migratedModels...); err != nil {
			return ctx, err
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
		}

		// Repositories
		userRepo := persistence.NewUserRepository(db)
		tokenRepo := persistence.NewTokenRepository(db)
		categoryRepo := persistence.NewCategoryRepository(db)
		transactionRepo := persistence.NewTransactionRepository(db)
		dashboardRepo := persistence.NewDashboardRepository(db)

		// Adapters
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(
			testJWTSecret,
			15*time.Minute,
			7*24*time.Hour,
			tokenRepo,
		)

		// Use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
		createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
		updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
		deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

		createTxnUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
		listTxnUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		getTxnUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
		updateTxnUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
		deleteTxnUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		getProfileUseCase := settings.NewGetProfileUseCase(userRepo)
		updateProfileUseCase := settings.NewUpdateProfileUseCase(userRepo)

		statsUseCase := dashboard.NewGetDashboardStatsUseCase(dashboardRepo)
		monthlyUseCase := dashboard.NewGetMonthlySummaryUseCase(dashboardRepo)
		weeklyUseCase := dashboard.NewGetWeeklySummaryUseCase(dashboardRepo)
		breakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(dashboardRepo, categoryRepo)
		overviewUseCase := dashboard.NewGetOverviewUseCase(
			statsUseCase, monthlyUseCase, weeklyUseCase, transactionRepo,
		)

		actionQueue := queue.NewRedisActionQueue(redisClient)
		enqueueUseCase := offline.NewEnqueueActionUseCase(actionQueue)
		listActionsUseCase := offline.NewListActionsUseCase(actionQueue)
		clearActionsUseCase := offline.NewClearActionsUseCase(actionQueue)
		tc.replayUseCase = offline.NewReplayActionsUseCase(actionQueue, createTxnUseCase, slog.Default())

		// Controllers and router
		healthController := controller.NewHealthController(func() bool { return true })
		authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase, logoutUseCase)
		categoryController := controller.NewCategoryController(
			createCategoryUseCase, listCategoriesUseCase, updateCategoryUseCase, deleteCategoryUseCase,
		)
		transactionController := controller.NewTransactionController(
			createTxnUseCase, listTxnUseCase, getTxnUseCase, updateTxnUseCase, deleteTxnUseCase,
		)
		dashboardController := controller.NewDashboardController(
			statsUseCase, monthlyUseCase, weeklyUseCase, breakdownUseCase, overviewUseCase,
		)
		settingsController := controller.NewSettingsController(
			getProfileUseCase, updateProfileUseCase,
		)
		offlineController := controller.NewOfflineController(
			enqueueUseCase, listActionsUseCase, clearActionsUseCase,
		)

		r := router.NewRouter(
			healthController,
			authController,
			categoryController,
			transactionController,
			dashboardController,
			settingsController,
			offlineController,
			middleware.NewRateLimiter(),
			middleware.NewAuthMiddleware(tokenService),
		)
		tc.server = httptest.NewServer(r.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerRequestSteps(ctx)
	registerResponseSteps(ctx)
	registerAuthSteps(ctx)
	registerOfflineSteps(ctx)
}
