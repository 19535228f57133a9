package db

import (
	"errors"
	"fmt"
	"strings"

	"foodshare/pkg/types"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Classify maps a driver error onto the store error taxonomy. Constraint
// failures become types.ErrConstraintViolation, everything else
// types.ErrStoreUnavailable. Already classified errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, types.ErrStoreUnavailable) || errors.Is(err, types.ErrConstraintViolation) {
		return err
	}

	if IsConstraintViolation(err) {
		return fmt.Errorf("%w: %w", types.ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", types.ErrStoreUnavailable, err)
}

func IsConstraintViolation(err error) bool {
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	// SQLSTATE class 23 is integrity constraint violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}

	return false
}
