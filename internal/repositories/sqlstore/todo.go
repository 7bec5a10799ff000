package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"todo-api/internal/models"
	"todo-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// TodoRepository implements repositories.TodoRepository on database/sql
type TodoRepository struct {
	*BaseRepository
}

// NewTodoRepository creates a new SQL todo repository
func NewTodoRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) repositories.TodoRepository {
	return &TodoRepository{
		BaseRepository: NewBaseRepository(db, "todos", dialect, logger),
	}
}

// Create inserts a todo and stores the generated ID back on it
func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	if err := todo.Validate(); err != nil {
		return repositories.ValidationError("todo", err)
	}

	query := fmt.Sprintf(
		"INSERT INTO todos (title, completed) VALUES (%s, %s) RETURNING id",
		r.dialect.Placeholder(1), r.dialect.Placeholder(2),
	)

	return r.withConn(ctx, "create", func(conn *sql.Conn) error {
		var id int64
		if err := r.executeQueryRow(ctx, conn, "create", query, todo.Title, todo.Completed).Scan(&id); err != nil {
			return repositories.NewRepositoryError("create", "todo", err)
		}
		todo.ID = id
		return nil
	})
}

// List retrieves every todo ordered by ID
func (r *TodoRepository) List(ctx context.Context) ([]*models.Todo, error) {
	query := "SELECT id, title, completed FROM todos ORDER BY id"

	todos := make([]*models.Todo, 0)
	err := r.withConn(ctx, "list", func(conn *sql.Conn) error {
		rows, err := r.executeQuery(ctx, conn, "list", query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			todo := &models.Todo{}
			// Rows written by older deployments may carry a NULL completed flag
			var completed sql.NullBool
			if err := rows.Scan(&todo.ID, &todo.Title, &completed); err != nil {
				return repositories.NewRepositoryError("list", "todo", err)
			}
			todo.Completed = completed.Bool
			todos = append(todos, todo)
		}

		if err := rows.Err(); err != nil {
			return repositories.NewRepositoryError("list", "todo", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}
