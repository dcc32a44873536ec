package Services

import (
	"github.com/gin-gonic/gin"
)

// GetUserIdFromContext safely retrieves the account id from the Gin
// context. It returns the empty string for a guest or unauthenticated
// session.
func GetUserIdFromContext(c *gin.Context) string {
	userID := ""
	if id, exists := c.Get("user_id"); exists {
		userID = id.(string)
	}
	return userID
}

func GetUsernameFromContext(c *gin.Context) string {
	username := ""
	if name, exists := c.Get("username"); exists {
		username = name.(string)
	}
	return username
}
