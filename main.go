package main

import (
	"net/http"

	"github.com/ChungBound/canvasAnalytics/config"
	"github.com/ChungBound/canvasAnalytics/src/Controllers"
	"github.com/ChungBound/canvasAnalytics/src/Logger"
	"github.com/ChungBound/canvasAnalytics/src/Middlewares"
	"github.com/ChungBound/canvasAnalytics/src/Router"
	"github.com/ChungBound/canvasAnalytics/src/Services"
	"github.com/ChungBound/canvasAnalytics/src/Websockets"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadServerConfig()

	log, err := Logger.New(cfg.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	Middlewares.JwtKey = []byte(cfg.JwtSecret)
	Controllers.JwtTTL = cfg.JwtTTL
	Services.SetSimulatedLatency(cfg.SimulatedLatency)

	store, err := Services.NewSeededStore()
	if err != nil {
		log.Fatal("failed to seed store", "error", err)
	}
	Services.RegisterEventHandlers(log)

	// Start WebSocket Hub
	go Websockets.MainHub.Run()

	if cfg.Mode == "prod" || cfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Apply error and request-log middleware globally
	r.Use(Middlewares.ErrorMiddleware())
	r.Use(Middlewares.RequestLogMiddleware(log))

	// Public routes
	publicRouter := Router.NewCustomRouter(r.Group("/"))

	publicRouter.POST("/login", "Login with account credentials", func(c *gin.Context) {
		Controllers.Login(c, store)
	})
	publicRouter.GET("/ping", "Health check endpoint", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Optional Auth routes (Context populated if token present, otherwise Guest)
	optionalAuthGroup := r.Group("/")
	optionalAuthGroup.Use(Middlewares.OptionalAuthMiddleware())
	optionalAuthRouter := Router.NewCustomRouter(optionalAuthGroup)

	optionalAuthRouter.GET("/report/stats", "Get dashboard statistics", func(c *gin.Context) {
		Controllers.GetDashboardStats(c, store)
	})
	optionalAuthRouter.GET("/report/charts", "Get distribution chart data", func(c *gin.Context) {
		Controllers.GetChartData(c, store)
	})
	optionalAuthRouter.GET("/table", "Get topic level of the data table", func(c *gin.Context) {
		Controllers.GetTopics(c, store)
	})
	optionalAuthRouter.GET("/table/item/:id", "Get discussion item details", func(c *gin.Context) {
		Controllers.GetDiscussionItem(c, store)
	})
	optionalAuthRouter.GET("/table/:topicId", "Get posts under a topic", func(c *gin.Context) {
		Controllers.GetPosts(c, store)
	})
	optionalAuthRouter.GET("/table/:topicId/:postId", "Get replies under a post", func(c *gin.Context) {
		Controllers.GetReplies(c, store)
	})

	// Protected routes
	protectedGroup := r.Group("/")
	protectedGroup.Use(Middlewares.AuthMiddleware())
	protectedRouter := Router.NewCustomRouter(protectedGroup)

	protectedRouter.GET("/profile", "Get current account details", func(c *gin.Context) {
		Controllers.GetProfile(c, store)
	})
	protectedRouter.PATCH("/profile", "Update current account details", func(c *gin.Context) {
		Controllers.UpdateProfile(c, store)
	})
	protectedRouter.POST("/refresh", "Refresh the session token", func(c *gin.Context) {
		Controllers.RefreshSession(c, store)
	})
	protectedRouter.GET("/active-users/:page_type/:page_id", "Get viewers on a dashboard page", func(c *gin.Context) {
		Controllers.GetViewersByPage(c)
	})

	// WebSocket route authenticates via the token query parameter
	wsGroup := r.Group("/")
	wsGroup.Use(Middlewares.WebSocketAuthMiddleware())
	wsRouter := Router.NewCustomRouter(wsGroup)
	wsRouter.GET("/ws", "WebSocket connection endpoint", func(c *gin.Context) {
		Controllers.HandleWebSocket(c)
	})

	// Admin routes
	adminGroup := r.Group("/")
	adminGroup.Use(Middlewares.AuthMiddleware())
	adminGroup.Use(Middlewares.AdminMiddleware())
	adminRouter := Router.NewCustomRouter(adminGroup)

	adminRouter.GET("/accounts", "List login accounts", func(c *gin.Context) {
		Controllers.GetLoginAccounts(c, store)
	})
	adminRouter.POST("/accounts", "Create a login account", func(c *gin.Context) {
		Controllers.CreateLoginAccount(c, store)
	})
	adminRouter.PATCH("/accounts/:id", "Update a login account", func(c *gin.Context) {
		Controllers.UpdateLoginAccount(c, store)
	})
	adminRouter.DELETE("/accounts/:id", "Delete a login account", func(c *gin.Context) {
		Controllers.DeleteLoginAccount(c, store)
	})
	adminRouter.GET("/notifications", "List email notifications", func(c *gin.Context) {
		Controllers.GetEmailNotifications(c, store)
	})
	adminRouter.PUT("/notifications/:accountId", "Update an email notification", func(c *gin.Context) {
		Controllers.UpdateEmailNotification(c, store)
	})
	adminRouter.POST("/notifications/:accountId/toggle", "Toggle an email notification", func(c *gin.Context) {
		Controllers.ToggleEmailNotification(c, store)
	})
	adminRouter.GET("/routes", "List registered routes", func(c *gin.Context) {
		c.JSON(http.StatusOK, Router.AllRoutes)
	})

	log.Info("listening", "url", "http://localhost:"+cfg.Port)
	for _, addr := range Services.NetworkAddresses() {
		log.Info("LAN access", "interface", addr.Name, "url", "http://"+addr.Address+":"+cfg.Port)
	}

	r.Run(":" + cfg.Port)
}
