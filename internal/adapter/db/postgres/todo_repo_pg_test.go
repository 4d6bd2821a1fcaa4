package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-todo-service/internal/domain/todo"
	"user-todo-service/internal/domain/user"
	apperrors "user-todo-service/pkg/errors"
)

func TestTodoRepoPG_Create(t *testing.T) {
	users, todos := setupUserRepo(t)
	ctx := context.Background()

	owner, err := users.Create(ctx, user.Fields{Name: ptr("Ann"), Email: ptr("a@x.com")})
	require.NoError(t, err)

	got, err := todos.Create(ctx, todo.Fields{UserID: &owner.ID, Title: ptr("Buy milk"), Description: ptr("2L")})
	require.NoError(t, err)

	assert.Positive(t, got.ID)
	require.NotNil(t, got.UserID)
	assert.Equal(t, owner.ID, *got.UserID)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2L", *got.Description)
	assert.False(t, got.IsCompleted)
	assert.Nil(t, got.DueDate)
	assert.NotNil(t, got.CreatedAt)
}

func TestTodoRepoPG_Create_WithoutUser(t *testing.T) {
	_, todos := setupUserRepo(t)

	got, err := todos.Create(context.Background(), todo.Fields{Title: ptr("orphan")})
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
}

func TestTodoRepoPG_Create_UnknownUser(t *testing.T) {
	_, todos := setupUserRepo(t)

	_, err := todos.Create(context.Background(), todo.Fields{UserID: ptr(int64(999)), Title: ptr("t")})
	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
	assert.Contains(t, strings.ToLower(err.Error()), "foreign key")
}

func TestTodoRepoPG_Create_MissingTitle(t *testing.T) {
	_, todos := setupUserRepo(t)

	_, err := todos.Create(context.Background(), todo.Fields{})
	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
}

func TestTodoRepoPG_List(t *testing.T) {
	_, todos := setupUserRepo(t)
	ctx := context.Background()

	list, err := todos.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = todos.Create(ctx, todo.Fields{Title: ptr("a")})
	require.NoError(t, err)
	_, err = todos.Create(ctx, todo.Fields{Title: ptr("b")})
	require.NoError(t, err)

	list, err = todos.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
