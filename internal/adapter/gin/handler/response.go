package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "user-todo-service/pkg/errors"
)

const genericErrorMessage = "Internal server error"

// Response is the envelope every JSON endpoint answers with on success.
// Data is always present, null when there is nothing to return.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse is the failure envelope. Path is only set for routing misses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// ErrorPolicy decides how much of a store failure reaches the client.
type ErrorPolicy struct {
	// ExposeStoreErrors forwards the driver's message text in 500 responses.
	ExposeStoreErrors bool
}

// UserResponse is the JSON shape of a users row.
type UserResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       *int       `json:"age"`
	Phone     *string    `json:"phone"`
	Address   *string    `json:"address"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TodoResponse is the JSON shape of a todos row.
type TodoResponse struct {
	ID          int64      `json:"id"`
	UserID      *int64     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func failure(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// bindBody decodes the JSON body into obj. An empty body leaves obj zero.
func bindBody(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// handleError converts usecase errors to HTTP responses.
func handleError(c *gin.Context, log *zap.Logger, policy ErrorPolicy, err error) {
	switch {
	case apperrors.IsNotFound(err):
		failure(c, http.StatusNotFound, err.Error())
	case apperrors.IsValidation(err):
		failure(c, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed",
			zap.String("kind", apperrors.KindOf(err).String()),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		msg := genericErrorMessage
		if policy.ExposeStoreErrors {
			msg = err.Error()
		}
		failure(c, http.StatusInternalServerError, msg)
	}
}
