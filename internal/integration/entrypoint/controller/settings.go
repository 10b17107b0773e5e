// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/settings"
	domainerror "github.com/MuriloKuehne/personal-finance-dashboard/internal/domain/error"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/dto"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/middleware"
)

// SettingsController handles user profile endpoints.
type SettingsController struct {
	getProfileUseCase    *settings.GetProfileUseCase
	updateProfileUseCase *settings.UpdateProfileUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getProfileUseCase *settings.GetProfileUseCase,
	updateProfileUseCase *settings.UpdateProfileUseCase,
) *SettingsController {
	return &SettingsController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *SettingsController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), settings.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PATCH /users/me requests.
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	input := settings.UpdateProfileInput{
		UserID:         userID,
		Name:           req.Name,
		FirstDayOfWeek: req.FirstDayOfWeek,
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleSettingsError maps settings errors to HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
