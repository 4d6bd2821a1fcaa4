package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-todo-service/internal/domain/todo"
	apperrors "user-todo-service/pkg/errors"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, f domain.Fields) (*domain.Todo, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func ptr[T any](v T) *T { return &v }

func TestCreateTodo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		uc := New(repo, zaptest.NewLogger(t), Options{})
		ctx := context.Background()

		in := CreateTodoRequest{UserID: ptr(int64(1)), Title: ptr("Buy milk")}
		repo.On("Create", ctx, domain.Fields{UserID: in.UserID, Title: in.Title}).
			Return(&domain.Todo{ID: 1, UserID: ptr(int64(1)), Title: "Buy milk"}, nil)

		resp, err := uc.CreateTodo(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, int64(1), *resp.Todo.UserID)
		assert.False(t, resp.Todo.IsCompleted)
		assert.Nil(t, resp.Todo.DueDate)
		repo.AssertExpectations(t)
	})

	t.Run("Foreign Key Violation", func(t *testing.T) {
		repo := new(MockRepository)
		uc := New(repo, zaptest.NewLogger(t), Options{})

		fkErr := apperrors.NewStoreError(apperrors.KindConflict, "create todo",
			errors.New(`insert or update on table "todos" violates foreign key constraint "fk_todos_user"`))
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, fkErr)

		resp, err := uc.CreateTodo(context.Background(), CreateTodoRequest{UserID: ptr(int64(42)), Title: ptr("x")})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("Strict Validation", func(t *testing.T) {
		repo := new(MockRepository)
		uc := New(repo, zaptest.NewLogger(t), Options{StrictValidation: true})

		_, err := uc.CreateTodo(context.Background(), CreateTodoRequest{UserID: ptr(int64(1))})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListTodos(t *testing.T) {
	repo := new(MockRepository)
	uc := New(repo, zaptest.NewLogger(t), Options{})
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b", IsCompleted: true}}, nil)

	resp, err := uc.ListTodos(ctx, ListTodosRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Todos, 2)
	assert.True(t, resp.Todos[1].IsCompleted)
}
