package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"todo-api/internal/metrics"
)

// HelloHandler serves the liveness greeting
type HelloHandler struct {
	metrics  *metrics.Collector
	hostname func() (string, error)
}

// NewHelloHandler creates a new liveness handler
func NewHelloHandler(collector *metrics.Collector) *HelloHandler {
	return &HelloHandler{
		metrics:  collector,
		hostname: os.Hostname,
	}
}

// @Summary Liveness greeting
// @Description Plain-text greeting naming the serving host. Counted in my_app_requests_total.
// @Tags system
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HelloHandler) Hello(c *gin.Context) {
	if h.metrics != nil {
		h.metrics.IncRequests()
	}

	host, err := h.hostname()
	if err != nil {
		host = "unknown"
	}

	c.String(http.StatusOK, "Hello from the Todo backend! Hostname: %s\n", host)
}
