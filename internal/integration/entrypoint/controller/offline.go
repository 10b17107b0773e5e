// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/adapter"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/application/usecase/offline"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/dto"
	"github.com/MuriloKuehne/personal-finance-dashboard/internal/integration/entrypoint/middleware"
)

// OfflineController handles the offline action queue endpoints.
type OfflineController struct {
	enqueueUseCase *offline.EnqueueActionUseCase
	listUseCase    *offline.ListActionsUseCase
	clearUseCase   *offline.ClearActionsUseCase
}

// NewOfflineController creates a new offline controller instance.
func NewOfflineController(
	enqueueUseCase *offline.EnqueueActionUseCase,
	listUseCase *offline.ListActionsUseCase,
	clearUseCase *offline.ClearActionsUseCase,
) *OfflineController {
	return &OfflineController{
		enqueueUseCase: enqueueUseCase,
		listUseCase:    listUseCase,
		clearUseCase:   clearUseCase,
	}
}

// Enqueue handles POST /offline/actions requests. The payload is accepted
// verbatim; it is only interpreted when the replay worker picks it up.
func (c *OfflineController) Enqueue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.EnqueueActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := offline.EnqueueActionInput{
		UserID:  userID,
		Type:    adapter.QueuedActionType(req.Type),
		Payload: req.Payload,
	}

	output, err := c.enqueueUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToQueuedActionResponse(output.Action))
}

// List handles GET /offline/actions requests.
func (c *OfflineController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), offline.ListActionsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToQueuedActionListResponse(output.Actions))
}

// Clear handles DELETE /offline/actions requests.
func (c *OfflineController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.clearUseCase.Execute(ctx.Request.Context(), offline.ClearActionsInput{
		UserID: userID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Offline actions cleared",
	})
}
