package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-api/internal/services"
)

// HealthResponse reports service and store status
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Error   string `json:"error,omitempty"`
}

const (
	serviceName    = "todo-api"
	serviceVersion = "1.0.0"
)

// HealthHandler reports whether the service can reach its store
type HealthHandler struct {
	todoService services.TodoService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(todoService services.TodoService) *HealthHandler {
	return &HealthHandler{todoService: todoService}
}

// @Summary Health check
// @Description Pings the todo store
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: serviceVersion,
	}

	if err := h.todoService.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		resp.Status = "unhealthy"
		resp.Error = "todo store unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
