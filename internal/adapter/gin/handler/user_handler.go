package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-todo-service/internal/usecase/user"
	"user-todo-service/pkg/logger"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc     user.Usecase
	log    *zap.Logger
	policy ErrorPolicy
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger, policy ErrorPolicy) *UserHandler {
	return &UserHandler{
		uc:     uc,
		log:    log,
		policy: policy,
	}
}

// UserRequest represents the HTTP request body for creating or replacing a user.
// Absent fields decode to nil and are stored as NULL.
type UserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Age     *int    `json:"age"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req UserRequest
	if err := bindBody(c, &req); err != nil {
		log.Warn("invalid create user request", zap.Error(err))
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleError(c, log, h.policy, err)
		return
	}

	success(c, http.StatusCreated, "Data inserted successfully", toUserResponse(resp.User))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{})
	if err != nil {
		handleError(c, logger.WithContext(c.Request.Context(), h.log), h.policy, err)
		return
	}

	success(c, http.StatusOK, "Users retrieved successfully", toUserResponses(resp.Users))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	id, err := parseID(c)
	if err != nil {
		log.Warn("invalid user id", zap.String("id", c.Param("id")), zap.Error(err))
		failure(c, http.StatusBadRequest, "User ID must be a valid number")
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		handleError(c, log, h.policy, err)
		return
	}

	success(c, http.StatusOK, "Users retrieved successfully", toUserResponses(resp.Users))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	id, err := parseID(c)
	if err != nil {
		log.Warn("invalid user id", zap.String("id", c.Param("id")), zap.Error(err))
		failure(c, http.StatusBadRequest, "User ID must be a valid number")
		return
	}

	var req UserRequest
	if err := bindBody(c, &req); err != nil {
		log.Warn("invalid update user request", zap.Error(err))
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Age:     req.Age,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleError(c, log, h.policy, err)
		return
	}

	success(c, http.StatusOK, "Users updated successfully", toUserResponses(resp.Users))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	id, err := parseID(c)
	if err != nil {
		log.Warn("invalid user id", zap.String("id", c.Param("id")), zap.Error(err))
		failure(c, http.StatusBadRequest, "User ID must be a valid number")
		return
	}

	if _, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		handleError(c, log, h.policy, err)
		return
	}

	success(c, http.StatusOK, "Users deleted successfully", nil)
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []user.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
