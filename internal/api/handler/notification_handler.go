package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type createNotificationRequest struct {
	Message  string `json:"message" validate:"required"`
	Severity string `json:"severity" validate:"omitempty,oneof=info warning critical"`
	Username string `json:"username"`
}

// Create godoc
// @Summary Publish a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body createNotificationRequest true "Notification"
// @Success 201 {object} domain.Notification
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /v1/notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notification, err := h.notificationService.Create(c.Request().Context(), ports.NotificationInput{
		Message:  req.Message,
		Severity: domain.NotificationSeverity(req.Severity),
		Username: req.Username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, notification)
}

// ListMine godoc
// @Summary List the caller's notifications, global ones included
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Return unread notifications only"
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /v1/notifications/me [get]
func (h *NotificationHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unread_only") == "true"
	notifications, err := h.notificationService.ListMine(c.Request().Context(), actor, unreadOnly)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	notification, err := h.notificationService.MarkRead(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notification)
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.notificationService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
