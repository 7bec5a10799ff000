package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "todo-api/docs"
	"todo-api/internal/metrics"
	"todo-api/internal/middleware"
	"todo-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TodoService services.TodoService
	Metrics     *metrics.Collector
	Registry    *prometheus.Registry
	Logger      *logrus.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	todoHandler := NewTodoHandler(config.TodoService)
	helloHandler := NewHelloHandler(config.Metrics)
	healthHandler := NewHealthHandler(config.TodoService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", helloHandler.Hello)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{
		ErrorLog: config.Logger,
	})))

	todos := router.Group("/todos")
	todos.Use(middleware.ContentTypeValidation("application/json"))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
	}
}

// MiddlewareConfig holds the settings for the global middleware chain
type MiddlewareConfig struct {
	Logger         *logrus.Logger
	Metrics        *metrics.Collector
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *MiddlewareConfig) {
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.Recovery(config.Logger))
	router.Use(middleware.Metrics(config.Metrics))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(config.MaxBodyBytes))
	router.Use(middleware.RateLimiter(config.RateLimitRPS, config.RateLimitBurst, config.Logger))
}
