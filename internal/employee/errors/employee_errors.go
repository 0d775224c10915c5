package employeeerrors

import (
	"net/http"

	"go-shift-admin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEmployeeCode = apperror.New(
		apperror.CodeConflict,
		"An employee with this code already exists",
		http.StatusConflict,
	)
	ErrRelatedCatalogNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The referenced group, role or position does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
