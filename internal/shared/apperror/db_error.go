package apperror

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var duplicateFields = []struct {
	key     string
	field   string
	message string
}{
	{"email", "email", "Email address is already registered"},
	{"username", "username", "Username is already taken"},
	{"phone", "phone", "Phone number is already registered"},
}

// DuplicateEntry builds the field-attributed conflict for a violated unique constraint.
func DuplicateEntry(constraint string) *AppError {
	name := strings.ToLower(constraint)
	for _, d := range duplicateFields {
		if strings.Contains(name, d.key) {
			return New(CodeDuplicateEntry, d.message, http.StatusConflict).WithField(d.field)
		}
	}
	return New(CodeDuplicateEntry, "Duplicate entry", http.StatusConflict)
}

// FromDB maps storage-layer errors onto the error taxonomy.
// Errors that are already *AppError, and unknown errors, are returned unchanged.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound.WithErr(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return DuplicateEntry(pgErr.ConstraintName).WithErr(err)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return Validation("Referenced record does not exist").WithErr(err)
		case pgErr.Code == pgerrcode.CheckViolation, pgErr.Code == pgerrcode.NotNullViolation:
			return Validation("Invalid data").WithErr(err)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgErr.Code == pgerrcode.AdminShutdown,
			pgErr.Code == pgerrcode.CannotConnectNow,
			pgErr.Code == pgerrcode.TooManyConnections:
			return ErrServiceUnavailable.WithErr(err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrServiceUnavailable.WithErr(err)
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return ErrServiceUnavailable.WithErr(err)
	}

	return err
}
