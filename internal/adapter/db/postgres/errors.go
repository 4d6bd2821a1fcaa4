package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "user-todo-service/pkg/errors"
)

// SQLSTATE codes used for classification.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeAdminShutdown       = "57P01"
	codeCrashShutdown       = "57P02"
	codeCannotConnectNow    = "57P03"
	classConnection         = "08"
)

// classify maps a driver error to a store error kind. translator is the
// dialect's error translator and may be nil.
func classify(translator gorm.ErrorTranslator, err error) apperrors.Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation, pgErr.Code == codeForeignKeyViolation:
			return apperrors.KindConflict
		case strings.HasPrefix(pgErr.Code, classConnection),
			pgErr.Code == codeAdminShutdown,
			pgErr.Code == codeCrashShutdown,
			pgErr.Code == codeCannotConnectNow:
			return apperrors.KindUnavailable
		default:
			return apperrors.KindUnknown
		}
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return apperrors.KindUnavailable
	}

	if translator != nil {
		translated := translator.Translate(err)
		if errors.Is(translated, gorm.ErrDuplicatedKey) || errors.Is(translated, gorm.ErrForeignKeyViolated) {
			return apperrors.KindConflict
		}
	}

	return apperrors.KindUnknown
}

// storeError wraps err so that handlers can tell store failures apart
// while the message stays the driver's own text.
func storeError(db *gorm.DB, op string, err error) error {
	translator, _ := db.Dialector.(gorm.ErrorTranslator)
	return apperrors.NewStoreError(classify(translator, err), op, err)
}
