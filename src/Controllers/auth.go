package Controllers

import (
	"net/http"
	"time"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Middlewares"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JwtTTL is the session token lifetime, overridden from config at startup.
var JwtTTL = 24 * time.Hour

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context, store *Services.Store) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, err)
		return
	}

	user, err := Services.Login(c.Request.Context(), store, creds.Username, creds.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	tokenString, err := TokenForUser(user)
	if err != nil {
		_ = c.Error(&Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate token"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"user":         user,
	})
}

// RefreshSession re-fetches the account behind the session and issues
// a fresh token, so role or email edits take effect without another
// login.
func RefreshSession(c *gin.Context, store *Services.Store) {
	userID := Services.GetUserIdFromContext(c)

	account, err := Services.GetCurrentUser(c.Request.Context(), store, userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	user := account.AuthUser()
	tokenString, err := TokenForUser(user)
	if err != nil {
		_ = c.Error(&Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate token"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"user":         user,
	})
}

// TokenForUser signs a session token carrying the AuthUser projection.
func TokenForUser(user Entities.AuthUser) (string, error) {
	expirationTime := time.Now().Add(JwtTTL)
	claims := &Middlewares.Claims{
		UserID:   user.Id,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "canvas-analytics-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Middlewares.JwtKey)
}
