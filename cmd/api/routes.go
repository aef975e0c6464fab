package main

import (
	"context"
	"net/http"
	"time"

	"easyrent-backend/internal/middleware"
	"easyrent-backend/pkg/cache"
	"easyrent-backend/pkg/database"
	"easyrent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupMetricsEndpoint()
	a.setupAPIRoutes()
}

// setupMetricsEndpoint exposes Prometheus metrics
func (a *App) setupMetricsEndpoint() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.Logger.Printf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.Logger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	authRequired := middleware.AuthMiddleware(a.Config)

	api := a.Router.Group("/api")
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register", a.UserHandler.Register)
			auth.POST("/login", a.UserHandler.Login)
			auth.GET("/me", authRequired, a.UserHandler.GetProfile)
		}

		// Properties: browsing and searching are public, mutations are not
		properties := api.Group("/properties")
		{
			properties.GET("", a.PropertyHandler.GetProperties)
			properties.GET("/search", a.PropertyHandler.SearchProperties)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
			properties.POST("", authRequired, a.PropertyHandler.CreateProperty)
			properties.PUT("/:id", authRequired, a.PropertyHandler.UpdateProperty)
			properties.DELETE("/:id", authRequired, a.PropertyHandler.DeleteProperty)
		}

		// Messaging
		messages := api.Group("/messages")
		messages.Use(authRequired)
		{
			messages.POST("", a.MessageHandler.SendMessage)
			messages.GET("", a.MessageHandler.GetConversations)
			messages.GET("/:userId", a.MessageHandler.GetConversation)
		}

		// Currency
		currency := api.Group("/currency")
		{
			currency.GET("/rates", a.CurrencyHandler.GetRates)
			currency.GET("/rates/:base/:target", a.CurrencyHandler.GetRate)
			currency.GET("/convert", a.CurrencyHandler.Convert)
			currency.PUT("/rates", authRequired, middleware.AdminOnly(), a.CurrencyHandler.UpsertRate)
			currency.POST("/sync", authRequired, middleware.AdminOnly(), a.CurrencyHandler.SyncRates)
		}

		// Reference data
		api.GET("/constants", a.ConstantsHandler.GetConstants)
	}
}
