package remindererrors

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
	ErrInvalidPolicy = apperror.New(
		apperror.CodeInvalidInput,
		"policy must be one of none, before_5_min, before_15_min, before_30_min",
		http.StatusBadRequest,
	)
	ErrSchedulingFailure = apperror.New(
		apperror.CodeSchedulingFailure,
		"reminder scheduling failed",
		http.StatusBadGateway,
	)
)
