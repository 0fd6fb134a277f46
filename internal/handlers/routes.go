package handlers

import (
	"net/http"

	"moving_ops/internal/middleware"
	"moving_ops/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth   *AuthHandler
	Orders *OrderHandler
	Drafts *DraftHandler
	Ledger *LedgerHandler
}

// SetupRoutes mounts the API under /api. Everything except login and the
// health check requires a session.
func SetupRoutes(router *gin.Engine, h Handlers, authService services.AuthService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)

		protected.GET("/orders", h.Orders.ListOrders)
		protected.GET("/orders/summary", h.Orders.Summary)
		protected.GET("/orders/:id", h.Orders.GetOrder)
		protected.DELETE("/orders/:id", h.Orders.DeleteOrder)

		protected.POST("/drafts", h.Drafts.Open)
		protected.GET("/drafts/:draftId", h.Drafts.Get)
		protected.PATCH("/drafts/:draftId", h.Drafts.Apply)
		protected.DELETE("/drafts/:draftId", h.Drafts.Discard)
		protected.POST("/drafts/:draftId/submit", h.Drafts.Submit)

		protected.GET("/transactions", h.Ledger.List)
		protected.POST("/transactions", h.Ledger.Record)
		protected.GET("/transactions/balance", h.Ledger.Balance)
		protected.DELETE("/transactions/:id", h.Ledger.Delete)
	}
}
