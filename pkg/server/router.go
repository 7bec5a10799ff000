package server

import (
	"github.com/gin-gonic/gin"

	"todo-api/internal/handlers"
)

// NewRouter builds the gin engine serving every HTTP route of the container
func NewRouter(c *Container) *gin.Engine {
	router := gin.New()

	handlers.SetupMiddleware(router, &handlers.MiddlewareConfig{
		Logger:         c.Logger,
		Metrics:        c.Metrics,
		RateLimitRPS:   c.Config.HTTP.RateLimitRPS,
		RateLimitBurst: c.Config.HTTP.RateLimitBurst,
		MaxBodyBytes:   c.Config.HTTP.MaxBodyBytes,
	})

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		TodoService: c.TodoService,
		Metrics:     c.Metrics,
		Registry:    c.Registry,
		Logger:      c.Logger,
	})

	return router
}
