package Controllers

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

type CreateAccountRequest struct {
	Username string        `json:"username" binding:"required"`
	Password string        `json:"password" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Role     Entities.Role `json:"role" binding:"omitempty,oneof=admin user"`
}

type UpdateAccountRequest struct {
	Username string        `json:"username"`
	Password string        `json:"password"` // blank keeps the current password
	Email    string        `json:"email" binding:"omitempty,email"`
	Role     Entities.Role `json:"role" binding:"omitempty,oneof=admin user"`
}

func GetLoginAccounts(c *gin.Context, store *Services.Store) {
	accounts, err := Services.ListLoginAccounts(c.Request.Context(), store)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func CreateLoginAccount(c *gin.Context, store *Services.Store) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	account, err := Services.CreateLoginAccount(c.Request.Context(), store, req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func UpdateLoginAccount(c *gin.Context, store *Services.Store) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	account, err := Services.UpdateLoginAccount(c.Request.Context(), store, c.Param("id"), req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func DeleteLoginAccount(c *gin.Context, store *Services.Store) {
	if err := Services.DeleteLoginAccount(c.Request.Context(), store, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
