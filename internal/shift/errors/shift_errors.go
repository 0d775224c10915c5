package shifterrors

import (
	"net/http"

	"go-shift-admin/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrDuplicateShift = apperror.New(
		apperror.CodeConflict,
		"A shift already exists for this employee on this date",
		http.StatusConflict,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"The shift was modified by another request; please retry",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift ID",
		http.StatusBadRequest,
	)
	ErrInvalidShiftDate = apperror.New(
		apperror.CodeInvalidInput,
		"Shift date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidTimeOfDay = apperror.New(
		apperror.CodeInvalidInput,
		"Start and end time must be in HH:MM format",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)
	ErrEmptyImport = apperror.New(
		apperror.CodeInvalidInput,
		"Import contains no rows",
		http.StatusBadRequest,
	)
)
