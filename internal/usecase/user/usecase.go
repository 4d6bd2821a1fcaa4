package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-todo-service/internal/domain/user"
	"user-todo-service/pkg/validation"
)

// Repository defines the interface for user data access operations.
// Every method issues exactly one statement.
type Repository interface {
	// Create inserts a row and returns it.
	Create(ctx context.Context, f domain.Fields) (*domain.User, error)
	// List returns every row, unordered.
	List(ctx context.Context) ([]domain.User, error)
	// FindByID returns the rows matching id, or a not-found error when there are none.
	FindByID(ctx context.Context, id int64) ([]domain.User, error)
	// Update replaces every writable column and returns the updated rows,
	// or a not-found error when no row matched.
	Update(ctx context.Context, id int64, f domain.Fields) ([]domain.User, error)
	// Delete removes the row, or returns a not-found error when no row matched.
	Delete(ctx context.Context, id int64) error
}

// Options tunes the use case.
type Options struct {
	// StrictValidation rejects requests failing their validate tags
	// before any statement is issued.
	StrictValidation bool
}

// Service implements user management on top of a Repository.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validation.Validator
	opts     Options
}

// New creates a new instance of Service.
func New(r Repository, log *zap.Logger, opts Options) *Service {
	return &Service{repo: r, log: log, validate: validation.New(), opts: opts}
}

func (uc *Service) check(in any) error {
	if !uc.opts.StrictValidation {
		return nil
	}
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return err
	}
	return nil
}

// CreateUser inserts a user and returns the stored row.
func (uc *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	uc.log.Info("creating user", zap.Stringp("name", in.Name), zap.Stringp("email", in.Email))

	if err := uc.check(in); err != nil {
		return nil, err
	}

	u, err := uc.repo.Create(ctx, domain.Fields{
		Name:    in.Name,
		Email:   in.Email,
		Age:     in.Age,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &CreateUserResponse{User: toDTO(*u)}, nil
}

// ListUsers returns every stored user.
func (uc *Service) ListUsers(ctx context.Context, _ ListUsersRequest) (*ListUsersResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	return &ListUsersResponse{Users: toDTOs(users)}, nil
}

// GetUser returns the rows matching the id.
func (uc *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	users, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &GetUserResponse{Users: toDTOs(users)}, nil
}

// UpdateUser overwrites all writable columns of the user.
// updated_at is left as it was.
func (uc *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID), zap.Stringp("name", in.Name), zap.Stringp("email", in.Email))

	if err := uc.check(in); err != nil {
		return nil, err
	}

	users, err := uc.repo.Update(ctx, in.ID, domain.Fields{
		Name:    in.Name,
		Email:   in.Email,
		Age:     in.Age,
		Phone:   in.Phone,
		Address: in.Address,
	})
	if err != nil {
		uc.log.Warn("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdateUserResponse{Users: toDTOs(users)}, nil
}

// DeleteUser removes the user; its todos go with it.
func (uc *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	uc.log.Info("deleting user", zap.Int64("id", in.ID))

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Warn("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteUserResponse{ID: in.ID}, nil
}

func toDTO(u domain.User) User {
	return User{
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

func toDTOs(users []domain.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = toDTO(u)
	}
	return out
}
