package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/toymix/internal/server/http/handlers"
	"github.com/polkiloo/toymix/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	saleHandler := handlers.NewSaleHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := engine.Group("")
	protected.Use(middleware.AuthRequired(facade))

	customers := protected.Group("/clientes")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	sales := protected.Group("/sales")
	sales.GET("", saleHandler.List)
	sales.POST("", saleHandler.Create)
	sales.PUT("/:id", saleHandler.Update)
	sales.DELETE("/:id", saleHandler.Delete)

	stats := protected.Group("/stats")
	stats.GET("/daily-sales", statsHandler.DailySales)
	stats.GET("/top-clients", statsHandler.TopClients)
	stats.GET("/summary", statsHandler.Summary)

	return engine
}
