package historyerrors

import (
	"go-shift-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrVersionNotFound = apperror.New(
		apperror.CodeNotFound,
		"The requested version was not found",
		http.StatusNotFound,
	)
	ErrCannotRestoreDeletion = apperror.New(
		apperror.CodeInvalidState,
		"A deletion cannot be restored; recreate the shift instead",
		http.StatusConflict,
	)
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"History record not found",
		http.StatusNotFound,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidVersion = apperror.New(
		apperror.CodeInvalidInput,
		"Version must be a positive integer",
		http.StatusBadRequest,
	)
)
