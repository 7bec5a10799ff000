package models

import (
	"fmt"
	"strings"
)

// Todo represents one item of the todo list.
// ID is assigned by the store on insert and never changes afterwards.
type Todo struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title" validate:"required"`
	Completed bool   `json:"completed" db:"completed"`
}

// NewTodo creates a new, not yet persisted, incomplete todo
func NewTodo(title string) *Todo {
	return &Todo{
		Title:     title,
		Completed: false,
	}
}

// Validate validates the todo data
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// IsPersisted reports whether the store has assigned an ID
func (t *Todo) IsPersisted() bool {
	return t.ID > 0
}
