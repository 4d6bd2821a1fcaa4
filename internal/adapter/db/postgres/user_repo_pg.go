package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-todo-service/internal/domain/user"
	apperrors "user-todo-service/pkg/errors"
)

const updateUserSQL = `UPDATE users SET name = ?, email = ?, age = ?, phone = ?, address = ? WHERE id = ? RETURNING *`

// UserRepoPG implements the user Repository interface using GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// Create inserts a new user into the database and returns the stored row.
func (r *UserRepoPG) Create(ctx context.Context, f user.Fields) (*user.User, error) {
	model := UserSchema{
		Name:    f.Name,
		Email:   f.Email,
		Age:     f.Age,
		Phone:   f.Phone,
		Address: f.Address,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.Stringp("email", f.Email))
		return nil, storeError(r.db, "create user", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	u := model.toDomain()
	return &u, nil
}

// List returns every user row in store order.
func (r *UserRepoPG) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, storeError(r.db, "list users", err)
	}

	return usersToDomain(models), nil
}

// FindByID returns the rows whose id matches.
func (r *UserRepoPG) FindByID(ctx context.Context, id int64) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&models).Error; err != nil {
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, storeError(r.db, "get user", err)
	}

	if len(models) == 0 {
		r.log.Debug("user not found", zap.Int64("id", id))
		return nil, apperrors.NewNotFoundError("user", "User not found")
	}

	return usersToDomain(models), nil
}

// Update overwrites every writable column in a single statement and
// returns the updated rows. updated_at keeps its insert-time value.
func (r *UserRepoPG) Update(ctx context.Context, id int64, f user.Fields) ([]user.User, error) {
	var models []UserSchema
	result := r.db.WithContext(ctx).
		Raw(updateUserSQL, f.Name, f.Email, f.Age, f.Phone, f.Address, id).
		Scan(&models)
	if result.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(result.Error), zap.Int64("id", id))
		return nil, storeError(r.db, "update user", result.Error)
	}

	if len(models) == 0 {
		r.log.Debug("user not found for update", zap.Int64("id", id))
		return nil, apperrors.NewNotFoundError("user", "User not found")
	}

	r.log.Info("user updated in db", zap.Int64("id", id))
	return usersToDomain(models), nil
}

// Delete removes a user by ID. The store removes the user's todos.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{})
	if result.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(result.Error), zap.Int64("id", id))
		return storeError(r.db, "delete user", result.Error)
	}

	if result.RowsAffected == 0 {
		r.log.Debug("user not found for delete", zap.Int64("id", id))
		return apperrors.NewNotFoundError("user", "User not found")
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return nil
}

func (m UserSchema) toDomain() user.User {
	return user.User{
		ID:        m.ID,
		Name:      deref(m.Name),
		Email:     deref(m.Email),
		Age:       m.Age,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func usersToDomain(models []UserSchema) []user.User {
	users := make([]user.User, len(models))
	for i, m := range models {
		users[i] = m.toDomain()
	}
	return users
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
