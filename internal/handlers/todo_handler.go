package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-api/internal/services"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService services.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// @Summary List todos
// @Description Get every todo, oldest first
// @Tags todos
// @Produce json
// @Success 200 {array} models.Todo
// @Failure 500 {object} ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list todos",
			Message: "The todo store is unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// @Summary Create a todo
// @Description Add a new, incomplete todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body services.CreateTodoRequest true "Todo data"
// @Success 201 {object} services.CreateTodoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req services.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: "title is required and must not be blank",
				Details: validationDetails(err),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create todo",
			Message: "The todo store is unavailable",
		})
		return
	}

	c.JSON(http.StatusCreated, services.CreateTodoResponse{
		Message: services.TodoAddedMessage,
		ID:      todo.ID,
	})
}
