package services

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"todo-api/internal/models"
	"todo-api/internal/repositories"
)

// fakeTodoRepository keeps todos in memory and can be told to fail
type fakeTodoRepository struct {
	todos []*models.Todo
	err   error
}

func (f *fakeTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	if f.err != nil {
		return f.err
	}
	if err := todo.Validate(); err != nil {
		return repositories.ValidationError("todo", err)
	}
	todo.ID = int64(len(f.todos) + 1)
	f.todos = append(f.todos, todo)
	return nil
}

func (f *fakeTodoRepository) List(ctx context.Context) ([]*models.Todo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(make([]*models.Todo, 0, len(f.todos)), f.todos...), nil
}

func (f *fakeTodoRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.todos)), f.err
}

func (f *fakeTodoRepository) Health(ctx context.Context) error {
	return f.err
}

func newTestService(repo repositories.TodoRepository) TodoService {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return NewTodoService(repo, logger)
}

func TestCreateTodo(t *testing.T) {
	repo := &fakeTodoRepository{}
	svc := newTestService(repo)

	todo, err := svc.CreateTodo(context.Background(), &CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if todo.ID != 1 {
		t.Errorf("ID = %d, want 1", todo.ID)
	}
	if todo.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", todo.Title, "Buy milk")
	}
	if todo.Completed {
		t.Error("new todo should not be completed")
	}
	if len(repo.todos) != 1 {
		t.Errorf("repository holds %d todos, want 1", len(repo.todos))
	}
}

func TestCreateTodo_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *CreateTodoRequest
	}{
		{"nil request", nil},
		{"missing title", &CreateTodoRequest{}},
		{"blank title", &CreateTodoRequest{Title: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTodoRepository{}
			svc := newTestService(repo)

			_, err := svc.CreateTodo(context.Background(), tt.req)
			if !IsValidation(err) {
				t.Fatalf("error = %v, want validation error", err)
			}
			if IsStorageUnavailable(err) {
				t.Error("validation error should not be reported as storage failure")
			}
			if len(repo.todos) != 0 {
				t.Errorf("repository holds %d todos, want 0", len(repo.todos))
			}
		})
	}
}

func TestCreateTodo_ValidationErrorsExposeFields(t *testing.T) {
	svc := newTestService(&fakeTodoRepository{})

	_, err := svc.CreateTodo(context.Background(), &CreateTodoRequest{})

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("error = %v, want validator.ValidationErrors in chain", err)
	}
	if validationErrs[0].Field() != "Title" || validationErrs[0].Tag() != "required" {
		t.Errorf("field error = %s/%s, want Title/required", validationErrs[0].Field(), validationErrs[0].Tag())
	}
}

func TestCreateTodo_StorageUnavailable(t *testing.T) {
	storeErr := repositories.ConnectionError("create", errors.New("disk gone"))
	svc := newTestService(&fakeTodoRepository{err: storeErr})

	_, err := svc.CreateTodo(context.Background(), &CreateTodoRequest{Title: "Buy milk"})
	if !IsStorageUnavailable(err) {
		t.Fatalf("error = %v, want storage unavailable", err)
	}
	if !repositories.IsConnection(err) {
		t.Error("underlying repository error should stay in the chain")
	}
}

func TestListTodos(t *testing.T) {
	repo := &fakeTodoRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	todos, err := svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Fatalf("ListTodos = %v, want empty slice", todos)
	}

	for _, title := range []string{"Buy milk", "Walk dog"} {
		if _, err := svc.CreateTodo(ctx, &CreateTodoRequest{Title: title}); err != nil {
			t.Fatalf("CreateTodo(%q) failed: %v", title, err)
		}
	}

	todos, err = svc.ListTodos(ctx)
	if err != nil {
		t.Fatalf("ListTodos failed: %v", err)
	}
	if len(todos) != 2 || todos[0].Title != "Buy milk" || todos[1].Title != "Walk dog" {
		t.Errorf("ListTodos = %+v", todos)
	}
}

func TestListTodos_StorageUnavailable(t *testing.T) {
	svc := newTestService(&fakeTodoRepository{err: errors.New("no such table: todos")})

	if _, err := svc.ListTodos(context.Background()); !IsStorageUnavailable(err) {
		t.Errorf("error = %v, want storage unavailable", err)
	}
}

func TestHealth(t *testing.T) {
	if err := newTestService(&fakeTodoRepository{}).Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}

	err := newTestService(&fakeTodoRepository{err: errors.New("down")}).Health(context.Background())
	if !IsStorageUnavailable(err) {
		t.Errorf("Health error = %v, want storage unavailable", err)
	}
}
