package Middlewares

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Router"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware restricts a route group to accounts with the admin
// role. The 403 message names the route by its registered description.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Entities.Role("")
		if r, exists := c.Get("role"); exists {
			role = r.(Entities.Role)
		}

		if role != Entities.RoleAdmin {
			description := Router.DescriptionFor(c.FullPath())
			_ = c.Error(&AppError{Code: http.StatusForbidden, Message: "User does not have access to " + description})
			c.Abort()
			return
		}

		c.Next()
	}
}
