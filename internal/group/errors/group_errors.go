package grouperrors

import (
	"net/http"

	"go-shift-admin/internal/shared/apperror"
)

var (
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Group not found",
		http.StatusNotFound,
	)
	ErrDuplicateGroupName = apperror.New(
		apperror.CodeConflict,
		"A group with this name already exists",
		http.StatusConflict,
	)
	ErrGroupInUse = apperror.New(
		apperror.CodeInvalidState,
		"The group still has employees assigned to it",
		http.StatusConflict,
	)
	ErrInvalidGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid group ID",
		http.StatusBadRequest,
	)
)
