package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetAllNotifications lists all notifications
// @Summary List notifications
// @Description Retrieves all notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/all-notification [get]
func (c *NotificationController) GetAllNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications))
}

// AddNotification creates a notification
// @Summary Add a notification
// @Description Creates a notification with an optional URL or attachment file
// @Tags notifications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param message formData string true "Notification message"
// @Param url formData string false "Target URL"
// @Param created_by formData string true "Actor identity"
// @Param file formData file false "Attachment file"
// @Success 201 {object} dto.APIResponse{data=models.Notification} "Notification created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/add-notification [post]
func (c *NotificationController) AddNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	// Optional attachment
	file, _ := ctx.FormFile("file")

	notification, err := c.notificationService.Create(ctx.Request.Context(), &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notification))
}

// EditNotification updates a notification
// @Summary Edit a notification
// @Description Updates a notification; an omitted file keeps the stored attachment
// @Tags notifications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Param message formData string true "Notification message"
// @Param url formData string false "Target URL"
// @Param modify_by formData string true "Actor identity"
// @Param file formData file false "Replacement attachment"
// @Success 200 {object} dto.APIResponse{data=models.Notification} "Notification updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/edit/{id} [put]
func (c *NotificationController) EditNotification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNotificationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, _ := ctx.FormFile("file")

	notification, err := c.notificationService.Update(ctx.Request.Context(), id, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notification))
}

// DeleteNotification removes a notification
// @Summary Delete a notification
// @Description Deletes a notification and its stored attachment
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse "Notification deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/delete/{id} [delete]
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.notificationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification deleted successfully"))
}
