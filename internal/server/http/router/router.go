package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sureshift/backend/internal/server/http/handlers"
	"github.com/sureshift/backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PickupFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	adminHandler := handlers.NewAdminHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	statusHandler := handlers.NewStatusHandler(facade)

	admin := engine.Group("/admin")
	admin.POST("/register", adminHandler.Register)
	admin.POST("/login", adminHandler.Login)

	engine.POST("/user", orderHandler.Create)
	engine.GET("/users", orderHandler.List)
	engine.GET("/users/:id", orderHandler.GetByID)
	engine.POST("/completeInfo", orderHandler.Lookup)

	protected := engine.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/status", statusHandler.Update)

	return engine
}
