package shift

import (
	"errors"

	shifterrors "go-shift-admin/internal/shift/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapWriteError translates database constraint failures into domain errors.
// A unique violation on the history version index means two transactions
// raced on the same shift and the loser should retry.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == "uq_shift_change_version" {
			return shifterrors.ErrConcurrentModification
		}
		return shifterrors.ErrDuplicateShift
	case pgForeignKeyViolation:
		return shifterrors.ErrEmployeeNotFound
	}
	return err
}
