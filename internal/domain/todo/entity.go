package todo

import "time"

// Todo represents a stored todo row. A todo belongs to at most one user and
// is removed together with it.
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

// Fields holds the columns accepted when creating a todo.
// A nil field is written as NULL.
type Fields struct {
	UserID      *int64
	Title       *string
	Description *string
}
