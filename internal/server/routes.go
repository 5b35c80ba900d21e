package server

import (
	"github.com/labstack/echo/v4"

	"example.com/cashcompass/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	summaryHandler *handlers.SummaryHandler,
	budgetHandler *handlers.BudgetHandler,
	plannerHandler *handlers.PlannerHandler,
	friendHandler *handlers.FriendHandler,
	chatHandler *handlers.ChatHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/verify", authHandler.Verify)
	authGroup.GET("/me", authHandler.Me, authMiddleware)
	authGroup.PUT("/profile", authHandler.UpdateProfile, authMiddleware)
	authGroup.DELETE("/account", authHandler.DeleteAccount, authMiddleware)

	entries := api.Group("/entries", authMiddleware)
	entries.GET("", entryHandler.List)
	entries.POST("", entryHandler.Create)
	entries.PUT("/:id", entryHandler.Update)
	entries.DELETE("/:id", entryHandler.Delete)

	summary := api.Group("/summary", authMiddleware)
	summary.GET("/weekly", summaryHandler.Weekly)
	summary.GET("/weekly/ai", summaryHandler.WeeklyAI, aiRateLimiter)

	budget := api.Group("/budget", authMiddleware)
	budget.GET("", budgetHandler.Get)
	budget.PUT("", budgetHandler.Upsert)

	planner := api.Group("/planner", authMiddleware)
	planner.GET("", plannerHandler.List)
	planner.PUT("", plannerHandler.Upsert)

	friends := api.Group("/friends", authMiddleware)
	friends.GET("", friendHandler.List)
	friends.GET("/requests", friendHandler.ListRequests)
	friends.POST("/requests", friendHandler.SendRequest)
	friends.POST("/requests/:id/accept", friendHandler.Accept)
	friends.POST("/requests/:id/decline", friendHandler.Decline)

	chat := api.Group("/chat", authMiddleware)
	chat.GET("/:friendId/messages", chatHandler.History)
	chat.POST("/:friendId/messages", chatHandler.Send)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
