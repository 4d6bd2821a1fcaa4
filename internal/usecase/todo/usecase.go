package todo

import (
	"context"

	"go.uber.org/zap"

	domain "user-todo-service/internal/domain/todo"
	"user-todo-service/pkg/validation"
)

// Repository defines todo data access. Every method issues one statement.
type Repository interface {
	Create(ctx context.Context, f domain.Fields) (*domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
}

// Options tunes the use case.
type Options struct {
	StrictValidation bool
}

// Service implements todo operations on top of a Repository.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validation.Validator
	opts     Options
}

// New creates a new todo Service.
func New(r Repository, log *zap.Logger, opts Options) *Service {
	return &Service{repo: r, log: log, validate: validation.New(), opts: opts}
}

// CreateTodo inserts a todo and returns the stored row. A user_id that
// references no user is rejected by the store.
func (uc *Service) CreateTodo(ctx context.Context, in CreateTodoRequest) (*CreateTodoResponse, error) {
	uc.log.Info("creating todo", zap.Int64p("user_id", in.UserID), zap.Stringp("title", in.Title))

	if uc.opts.StrictValidation {
		if err := uc.validate.Struct(in); err != nil {
			uc.log.Warn("validate failed", zap.Error(err))
			return nil, err
		}
	}

	t, err := uc.repo.Create(ctx, domain.Fields{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		uc.log.Error("failed to create todo", zap.Error(err))
		return nil, err
	}

	return &CreateTodoResponse{Todo: toDTO(*t)}, nil
}

// ListTodos returns every stored todo.
func (uc *Service) ListTodos(ctx context.Context, _ ListTodosRequest) (*ListTodosResponse, error) {
	todos, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list todos", zap.Error(err))
		return nil, err
	}

	out := make([]Todo, len(todos))
	for i, t := range todos {
		out[i] = toDTO(t)
	}
	return &ListTodosResponse{Todos: out}, nil
}

func toDTO(t domain.Todo) Todo {
	return Todo{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
