package models

import (
	"encoding/json"
	"testing"
)

func TestTodoValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid title", "Buy milk", false},
		{"title with surrounding spaces", "  Buy milk  ", false},
		{"empty title", "", true},
		{"blank title", "   \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTodo(tt.title).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTodo(t *testing.T) {
	todo := NewTodo("Buy milk")

	if todo.Completed {
		t.Error("new todo should not be completed")
	}
	if todo.IsPersisted() {
		t.Error("new todo should not have an ID yet")
	}
}

func TestTodoJSON(t *testing.T) {
	data, err := json.Marshal(&Todo{ID: 1, Title: "Buy milk"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":1,"title":"Buy milk","completed":false}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
