// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/dashboard"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/entity"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/dto"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	statsUseCase     *dashboard.GetDashboardStatsUseCase
	monthlyUseCase   *dashboard.GetMonthlySummaryUseCase
	weeklyUseCase    *dashboard.GetWeeklySummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	overviewUseCase  *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetDashboardStatsUseCase,
	monthlyUseCase *dashboard.GetMonthlySummaryUseCase,
	weeklyUseCase *dashboard.GetWeeklySummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	overviewUseCase *dashboard.GetOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		statsUseCase:     statsUseCase,
		monthlyUseCase:   monthlyUseCase,
		weeklyUseCase:    weeklyUseCase,
		breakdownUseCase: breakdownUseCase,
		overviewUseCase:  overviewUseCase,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// MonthlySummary handles GET /dashboard/monthly-summary requests. An optional
// months query parameter widens or narrows the window.
func (c *DashboardController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetMonthlySummaryInput{
		UserID: userID,
	}

	if monthsParam := ctx.Query("months"); monthsParam != "" {
		months, err := strconv.Atoi(monthsParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonthsBack),
			})
			return
		}
		input.Months = months
	}

	buckets, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(buckets))
}

// WeeklySummary handles GET /dashboard/weekly-summary requests.
func (c *DashboardController) WeeklySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	buckets, err := c.weeklyUseCase.Execute(ctx.Request.Context(), dashboard.GetWeeklySummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklySummaryResponse(buckets))
}

// CategoryBreakdown handles GET /dashboard/category-breakdown requests. The
// type query parameter selects expense or income transactions.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryBreakdownInput{
		UserID: userID,
		Type:   entity.TransactionType(ctx.Query("type")),
	})
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(entries))
}

// Overview handles GET /dashboard/overview requests. The response always has
// the full shape; sections that failed carry an error instead of data.
func (c *DashboardController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
	})

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// handleStatsError handles aggregation errors and returns appropriate HTTP
// responses. A non-numeric stored amount is a data integrity problem, not a
// bad request, and maps to 422.
func (c *DashboardController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		ctx.JSON(statusCodeForStatsError(statsErr.Code), dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForStatsError maps aggregation error codes to HTTP status codes.
func statusCodeForStatsError(code domainerror.StatsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonthsBack:
		return http.StatusBadRequest
	case domainerror.ErrCodeAmountNotNumeric:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
