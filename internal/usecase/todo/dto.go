package todo

import "time"

// CreateTodoRequest represents the input for creating a todo.
// Nil fields are stored as NULL. The tags are only enforced in strict mode.
type CreateTodoRequest struct {
	UserID      *int64  `validate:"omitempty,min=1"`
	Title       *string `validate:"required,max=255"`
	Description *string
}

// CreateTodoResponse carries the inserted row.
type CreateTodoResponse struct {
	Todo Todo
}

// ListTodosRequest represents the input for listing every todo.
type ListTodosRequest struct{}

// ListTodosResponse carries all stored todos.
type ListTodosResponse struct {
	Todos []Todo
}

// Todo represents a todo DTO for API responses.
type Todo struct {
	ID          int64
	UserID      *int64
	Title       string
	Description *string
	IsCompleted bool
	DueDate     *time.Time
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}
