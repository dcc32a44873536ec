package Controllers

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/src/Entities"
	"github.com/ChungBound/canvasAnalytics/src/Middlewares"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/ChungBound/canvasAnalytics/src/Websockets"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// locationMessage is what a dashboard sends when the viewer navigates
// to another drill-down page.
type locationMessage struct {
	PageType string `json:"page_type"`
	PageId   string `json:"page_id"`
}

func HandleWebSocket(c *gin.Context) {
	userID := Services.GetUserIdFromContext(c)
	if userID == "" {
		_ = c.Error(&Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		c.Abort()
		return
	}
	username := Services.GetUsernameFromContext(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &Websockets.Client{
		Hub:      Websockets.MainHub,
		Conn:     conn,
		Send:     make(chan interface{}, 256),
		UserID:   userID,
		Username: username,
	}

	Websockets.MainHub.Register(client)
	Services.ActivityStorage.AddViewer(userID, username)

	// Read loop: keeps the connection alive, records page changes and
	// detects disconnects.
	go func() {
		defer func() {
			Services.ActivityStorage.RemoveViewer(userID)
			Websockets.MainHub.Unregister(client)
			conn.Close()
		}()
		for {
			var msg locationMessage
			if err := conn.ReadJSON(&msg); err != nil {
				break
			}
			if msg.PageType != "" {
				Services.ActivityStorage.UpdateViewerLocation(userID, msg.PageType, msg.PageId)
			}
		}
	}()
}

// GetViewersByPage lists the viewers currently on one drill-down page.
func GetViewersByPage(c *gin.Context) {
	pageType := c.Param("page_type")
	pageId := c.Param("page_id")

	viewers := Services.ActivityStorage.GetViewersOnPage(pageType, pageId)

	shortUsers := make([]Entities.ShortUser, 0, len(viewers))
	for _, v := range viewers {
		shortUsers = append(shortUsers, Entities.ShortUser{
			Id:       v.UserID,
			Username: v.Username,
		})
	}

	c.JSON(http.StatusOK, shortUsers)
}
