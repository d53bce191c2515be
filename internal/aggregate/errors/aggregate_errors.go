package aggregateerrors

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
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidCode = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of ✓ ! RV P B H X",
		http.StatusBadRequest,
	)
	ErrNoteTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Note must be at most 500 characters",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to build the monthly export",
		http.StatusInternalServerError,
	)
)
