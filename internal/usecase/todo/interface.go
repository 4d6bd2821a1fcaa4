package todo

import "context"

// Usecase defines the todo operations exposed to transports.
// Todos can only be created and listed.
type Usecase interface {
	CreateTodo(ctx context.Context, in CreateTodoRequest) (*CreateTodoResponse, error)
	ListTodos(ctx context.Context, in ListTodosRequest) (*ListTodosResponse, error)
}

var _ Usecase = (*Service)(nil)
