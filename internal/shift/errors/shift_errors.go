package shifterrors

import (
	"net/http"

	"go-attendo/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"shift not found",
		http.StatusNotFound,
	)
	ErrDuplicateName = apperror.New(
		apperror.CodeConflict,
		"a shift with this name already exists",
		http.StatusConflict,
	)
	ErrDuplicateShift = apperror.New(
		apperror.CodeConflict,
		"a shift with the same schedule already exists",
		http.StatusConflict,
	)
	ErrEmptyName = apperror.New(
		apperror.CodeInvalidInput,
		"shift name is required",
		http.StatusBadRequest,
	)
)
