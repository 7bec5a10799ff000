package repositories

import (
	"context"

	"todo-api/internal/models"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// TodoRepository defines todo persistence operations
type TodoRepository interface {
	HealthChecker

	// Create inserts the todo and sets its store-assigned ID
	Create(ctx context.Context, todo *models.Todo) error

	// List returns every stored todo, ordered by ID
	List(ctx context.Context) ([]*models.Todo, error)

	// Count returns the number of stored todos
	Count(ctx context.Context) (int64, error)
}
