package Controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Middlewares"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/gin-gonic/gin"
)

// serviceError translates service-layer errors into AppErrors for the
// error middleware.
func serviceError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, Services.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, Services.ErrUsernameExists):
		code = http.StatusConflict
	case errors.Is(err, Services.ErrAccountNotFound),
		errors.Is(err, Services.ErrNotificationNotFound),
		errors.Is(err, Services.ErrItemNotFound):
		code = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Caller went away mid-call; nothing was written, nothing to report.
		c.Abort()
		return
	default:
		_ = c.Error(err)
		c.Abort()
		return
	}

	_ = c.Error(&Middlewares.AppError{Code: code, Message: err.Error()})
	c.Abort()
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(&Middlewares.AppError{Code: http.StatusBadRequest, Message: "Invalid request body: " + err.Error()})
	c.Abort()
}
