package Controllers

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

type UpdateNotificationRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Enabled *bool  `json:"enabled"`
}

func GetEmailNotifications(c *gin.Context, store *Services.Store) {
	notifications, err := Services.ListEmailNotifications(c.Request.Context(), store)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func UpdateEmailNotification(c *gin.Context, store *Services.Store) {
	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	notification, err := Services.UpdateEmailNotification(c.Request.Context(), store, c.Param("accountId"), req.Email, req.Enabled)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func ToggleEmailNotification(c *gin.Context, store *Services.Store) {
	notification, err := Services.ToggleEmailNotification(c.Request.Context(), store, c.Param("accountId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}
