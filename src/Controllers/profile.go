package Controllers

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` // blank keeps the current password
	Email    string `json:"email" binding:"omitempty,email"`
}

func GetProfile(c *gin.Context, store *Services.Store) {
	userID := Services.GetUserIdFromContext(c)

	account, err := Services.GetCurrentUser(c.Request.Context(), store, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func UpdateProfile(c *gin.Context, store *Services.Store) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	userID := Services.GetUserIdFromContext(c)
	account, err := Services.UpdateCurrentUser(c.Request.Context(), store, userID, req.Username, req.Password, req.Email)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
