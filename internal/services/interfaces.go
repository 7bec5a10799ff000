package services

import (
	"context"

	"todo-api/internal/models"
)

// TodoService defines the interface for todo business logic operations
type TodoService interface {
	ListTodos(ctx context.Context) ([]*models.Todo, error)
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error)

	// Health reports whether the backing store is reachable
	Health(ctx context.Context) error
}

// Request/Response types

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,notblank"`
}

type CreateTodoResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// TodoAddedMessage is the confirmation returned after a todo is stored
const TodoAddedMessage = "Todo added!"
