package user

import "time"

// CreateUserRequest represents the input for creating a user.
// Nil fields are stored as NULL. The tags are only enforced in strict mode.
type CreateUserRequest struct {
	Name    *string `validate:"required,max=100"`
	Email   *string `validate:"required,email,max=150"`
	Age     *int    `validate:"omitempty,min=0"`
	Phone   *string `validate:"omitempty,max=15"`
	Address *string
}

// CreateUserResponse carries the inserted row.
type CreateUserResponse struct {
	User User
}

// ListUsersRequest represents the input for listing every user.
type ListUsersRequest struct{}

// ListUsersResponse carries all stored users.
type ListUsersResponse struct {
	Users []User
}

// GetUserRequest represents the input for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse carries the rows matching the requested id.
type GetUserResponse struct {
	Users []User
}

// UpdateUserRequest replaces every writable column of the user with ID.
// Omitted fields overwrite the stored value with NULL.
type UpdateUserRequest struct {
	ID      int64
	Name    *string `validate:"required,max=100"`
	Email   *string `validate:"required,email,max=150"`
	Age     *int    `validate:"omitempty,min=0"`
	Phone   *string `validate:"omitempty,max=15"`
	Address *string
}

// UpdateUserResponse carries the rows returned by the update.
type UpdateUserResponse struct {
	Users []User
}

// DeleteUserRequest represents the input for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse represents the result of a delete.
type DeleteUserResponse struct {
	ID int64
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID        int64
	Name      string
	Email     string
	Age       *int
	Phone     *string
	Address   *string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}
