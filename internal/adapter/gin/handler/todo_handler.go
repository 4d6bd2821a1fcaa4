package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-todo-service/internal/usecase/todo"
	"user-todo-service/pkg/logger"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	uc     todo.Usecase
	log    *zap.Logger
	policy ErrorPolicy
}

// NewTodoHandler creates a new TodoHandler instance
func NewTodoHandler(uc todo.Usecase, log *zap.Logger, policy ErrorPolicy) *TodoHandler {
	return &TodoHandler{uc: uc, log: log, policy: policy}
}

// TodoRequest represents the HTTP request body for creating a todo.
type TodoRequest struct {
	UserID      *int64  `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req TodoRequest
	if err := bindBody(c, &req); err != nil {
		log.Warn("invalid create todo request", zap.Error(err))
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.uc.CreateTodo(c.Request.Context(), todo.CreateTodoRequest{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, log, h.policy, err)
		return
	}

	success(c, http.StatusCreated, "To-do created successfully", toTodoResponse(resp.Todo))
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(c *gin.Context) {
	resp, err := h.uc.ListTodos(c.Request.Context(), todo.ListTodosRequest{})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), h.policy, err)
		return
	}

	out := make([]TodoResponse, len(resp.Todos))
	for i, t := range resp.Todos {
		out[i] = toTodoResponse(t)
	}
	success(c, http.StatusOK, "TO-dos retrieved successfully", out)
}

func toTodoResponse(t todo.Todo) TodoResponse {
	return TodoResponse{
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
