package statuserrors

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
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be one of go_work, check_in, check_out, complete",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPrerequisiteMissing = apperror.New(
		apperror.CodePrerequisiteMissing,
		"the previous step has not been recorded today",
		http.StatusUnprocessableEntity,
	)
	ErrConfirmationRequired = apperror.New(
		apperror.CodeConfirmationRequired,
		"this action needs confirmation",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"cannot move back to an earlier step",
		http.StatusConflict,
	)
	ErrDayCompleted = apperror.New(
		apperror.CodeInvalidState,
		"the day is already completed",
		http.StatusConflict,
	)
)
