package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.History())
}
