package user

import "time"

// User represents a stored user row.
type User struct {
	ID        int64      // ID is the unique identifier for the user
	Name      string     // Name is the full name of the user
	Email     string     // Email is the unique email address of the user
	Age       *int       // Age is optional
	Phone     *string    // Phone is optional
	Address   *string    // Address is optional
	CreatedAt *time.Time // CreatedAt is set when the row is inserted
	UpdatedAt *time.Time // UpdatedAt is set when the row is inserted and never refreshed
}

// Fields holds the writable columns of a user.
// A nil field is written as NULL.
type Fields struct {
	Name    *string
	Email   *string
	Age     *int
	Phone   *string
	Address *string
}
