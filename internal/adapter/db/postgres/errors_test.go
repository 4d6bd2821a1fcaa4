package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "user-todo-service/pkg/errors"
)

type stubTranslator struct{ out error }

func (s stubTranslator) Translate(error) error { return s.out }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		translator gorm.ErrorTranslator
		err        error
		want       apperrors.Kind
	}{
		{"unique violation", nil, &pgconn.PgError{Code: "23505"}, apperrors.KindConflict},
		{"foreign key violation", nil, &pgconn.PgError{Code: "23503"}, apperrors.KindConflict},
		{"wrapped pg error", nil, fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), apperrors.KindConflict},
		{"connection failure", nil, &pgconn.PgError{Code: "08006"}, apperrors.KindUnavailable},
		{"admin shutdown", nil, &pgconn.PgError{Code: "57P01"}, apperrors.KindUnavailable},
		{"not null violation", nil, &pgconn.PgError{Code: "23502"}, apperrors.KindUnknown},
		{"bad conn", nil, driver.ErrBadConn, apperrors.KindUnavailable},
		{"deadline", nil, context.DeadlineExceeded, apperrors.KindUnavailable},
		{"dial error", nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}, apperrors.KindUnavailable},
		{"translated duplicate", stubTranslator{gorm.ErrDuplicatedKey}, errors.New("UNIQUE constraint failed: users.email"), apperrors.KindConflict},
		{"translated foreign key", stubTranslator{gorm.ErrForeignKeyViolated}, errors.New("FOREIGN KEY constraint failed"), apperrors.KindConflict},
		{"untranslated", stubTranslator{errors.New("other")}, errors.New("other"), apperrors.KindUnknown},
		{"plain error", nil, errors.New("boom"), apperrors.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.translator, tt.err))
		})
	}
}

func TestStoreError_KeepsDriverText(t *testing.T) {
	db := setupTestDB(t)
	cause := errors.New(`duplicate key value violates unique constraint "users_email_key"`)

	err := storeError(db, "create user", cause)

	assert.EqualError(t, err, cause.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrors.IsStore(err))
}
