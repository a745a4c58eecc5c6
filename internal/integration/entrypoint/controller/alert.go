package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/usecase/alert"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// AlertController handles transient alert endpoints.
type AlertController struct {
	showUseCase    *alert.ShowAlertUseCase
	dismissUseCase *alert.DismissAlertUseCase
	listUseCase    *alert.ListAlertsUseCase
}

// NewAlertController creates a new alert controller instance.
func NewAlertController(
	showUseCase *alert.ShowAlertUseCase,
	dismissUseCase *alert.DismissAlertUseCase,
	listUseCase *alert.ListAlertsUseCase,
) *AlertController {
	return &AlertController{
		showUseCase:    showUseCase,
		dismissUseCase: dismissUseCase,
		listUseCase:    listUseCase,
	}
}

// Show handles POST /alerts requests.
func (c *AlertController) Show(ctx *gin.Context) {
	var req dto.ShowAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingNotificationFields),
		})
		return
	}

	input := alert.ShowAlertInput{
		Title:    req.Title,
		Message:  req.Message,
		Level:    entity.AlertLevel(req.Level),
		Duration: time.Duration(req.Duration) * time.Millisecond,
	}

	output, err := c.showUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var ntfErr *domainerror.NotificationError
		if errors.As(err, &ntfErr) && ntfErr.Code == domainerror.ErrCodeInvalidAlertLevel {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: ntfErr.Message,
				Code:  string(ntfErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to show alert",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAlertResponse(output.Alert))
}

// Dismiss handles DELETE /alerts/:id requests. Dismissing an expired or
// unknown alert still returns 204.
func (c *AlertController) Dismiss(ctx *gin.Context) {
	alertID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid alert ID format",
		})
		return
	}

	input := alert.DismissAlertInput{ID: alertID}
	if err := c.dismissUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to dismiss alert",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// List handles GET /alerts requests.
func (c *AlertController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve alerts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAlertListResponse(output.Alerts))
}
