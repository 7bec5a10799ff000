package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sirupsen/logrus"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// todoService implements the TodoService interface
type todoService struct {
	todoRepo  repositories.TodoRepository
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewTodoService creates a new todo service instance
func NewTodoService(todoRepo repositories.TodoRepository, logger *logrus.Logger) TodoService {
	if logger == nil {
		logger = logrus.New()
	}
	return &todoService{
		todoRepo:  todoRepo,
		validator: NewValidator(),
		logger:    logger,
	}
}

// NewValidator returns a validator with the custom tags used by request types
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for empty tags or nil functions
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ListTodos returns every stored todo, oldest first
func (s *todoService) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	todos, err := s.todoRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list todos")
		return nil, fmt.Errorf("%w: failed to list todos: %w", ErrStorageUnavailable, err)
	}
	return todos, nil
}

// CreateTodo validates the request and stores a new incomplete todo
func (s *todoService) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create todo request cannot be nil", ErrValidation)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	todo := models.NewTodo(req.Title)
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		if repositories.IsValidation(err) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		s.logger.WithError(err).Error("Failed to create todo")
		return nil, fmt.Errorf("%w: failed to create todo: %w", ErrStorageUnavailable, err)
	}

	s.logger.WithField("todo_id", todo.ID).Info("Todo created")
	return todo, nil
}

// Health checks that the todo store is reachable
func (s *todoService) Health(ctx context.Context) error {
	if err := s.todoRepo.Health(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
