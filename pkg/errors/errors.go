package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies a failure reported by the store.
type Kind int

const (
	// KindUnknown is any store failure that could not be classified.
	KindUnknown Kind = iota
	// KindNotFound means an id-scoped statement matched zero rows.
	KindNotFound
	// KindConflict means a uniqueness or foreign key constraint rejected the statement.
	KindConflict
	// KindUnavailable means the store could not be reached or dropped the connection.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// ValidationError represents malformed or rejected request input
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// GRPCStatus returns the gRPC status for this error
func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// GRPCStatus returns the gRPC status for this error
func (e *NotFoundError) GRPCStatus() *status.Status {
	return status.New(codes.NotFound, e.Error())
}

// StoreError wraps a failure returned by the database driver.
// Error returns the driver text untouched.
type StoreError struct {
	Kind Kind
	Op   string
	Err  error
}

// NewStoreError creates a new store error of the given kind
func NewStoreError(kind Kind, op string, err error) *StoreError {
	return &StoreError{
		Kind: kind,
		Op:   op,
		Err:  err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

// Unwrap returns the driver error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// GRPCStatus returns the gRPC status for this error
func (e *StoreError) GRPCStatus() *status.Status {
	switch e.Kind {
	case KindNotFound:
		return status.New(codes.NotFound, e.Error())
	case KindConflict:
		return status.New(codes.AlreadyExists, e.Error())
	case KindUnavailable:
		return status.New(codes.Unavailable, e.Error())
	default:
		return status.New(codes.Internal, e.Error())
	}
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// GRPCStatus returns the gRPC status for this error
func (e *InternalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Message)
}

// GRPCStatuser interface for errors that can provide gRPC status
type GRPCStatuser interface {
	GRPCStatus() *status.Status
}

// KindOf reports the store kind carried by err. Not-found errors report
// KindNotFound; errors that are not store failures report KindUnknown.
func KindOf(err error) Kind {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return KindNotFound
	}
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStore reports whether err came from the store.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
