package roleerrors

import (
	"net/http"

	"go-shift-admin/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrDuplicateRoleCode = apperror.New(
		apperror.CodeConflict,
		"A role with this code already exists",
		http.StatusConflict,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeInvalidState,
		"The role is still assigned to employees",
		http.StatusConflict,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
	ErrInvalidRoleType = apperror.New(
		apperror.CodeInvalidInput,
		"Role type must be FUNCTION, AUTHORITY, or POSITION",
		http.StatusBadRequest,
	)
)
