package employee

import (
	"errors"

	employeeerrors "go-shift-admin/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeerrors.ErrDuplicateEmployeeCode
		case "23503":
			return employeeerrors.ErrRelatedCatalogNotFound
		}
	}
	return err
}
