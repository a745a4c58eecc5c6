package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/application/usecase/notification"
	domainerror "github.com/smartspend/backend/internal/domain/error"
	"github.com/smartspend/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles durable notification endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	markReadUseCase    *notification.MarkReadUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
	deleteUseCase      *notification.DeleteNotificationUseCase
	clearUseCase       *notification.ClearNotificationsUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
	deleteUseCase *notification.DeleteNotificationUseCase,
	clearUseCase *notification.ClearNotificationsUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
		deleteUseCase:      deleteUseCase,
		clearUseCase:       clearUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output))
}

// MarkRead handles POST /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	input := notification.MarkReadInput{ID: notificationID}
	if err := c.markReadUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var ntfErr *domainerror.NotificationError
		if errors.As(err, &ntfErr) && ntfErr.Code == domainerror.ErrCodeNotificationNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: ntfErr.Message,
				Code:  string(ntfErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notification as read",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	if err := c.markAllReadUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to mark notifications as read",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /notifications/:id requests.
func (c *NotificationController) Delete(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	input := notification.DeleteNotificationInput{ID: notificationID}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete notification",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Clear handles DELETE /notifications requests.
func (c *NotificationController) Clear(ctx *gin.Context) {
	if err := c.clearUseCase.Execute(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear notifications",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
