package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-attendo/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5,shiftname"`
	Start string `json:"startWorkTime" validate:"required,hhmm"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and details", func(t *testing.T) {
		err := apperror.New(apperror.CodeConfirmationRequired, "confirm", http.StatusConflict).WithDetails("reason")
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConfirmationRequired, got.Code)
		assert.Equal(t, "reason", got.Details)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})

	t.Run("wrapped storage error", func(t *testing.T) {
		err := apperror.Storage(errors.New("redis down"))
		assert.Equal(t, apperror.CodeStorageFailure, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "redis down")
	})
}

func TestAppError_IsSurvivesDetails(t *testing.T) {
	base := apperror.New(apperror.CodeInvalidState, "day completed", http.StatusConflict)
	assert.True(t, errors.Is(base.WithDetails(map[string]string{"a": "b"}), base))
}

func TestMapValidationError(t *testing.T) {
	v := apperror.NewValidator()

	err := apperror.MapValidationError(v.Struct(sample{Name: "", Start: "08:00"}))
	assert.Equal(t, "Name is required", err.Error())

	err = apperror.MapValidationError(v.Struct(sample{Name: "toolong", Start: "08:00"}))
	assert.Equal(t, "Name must be at most 5 characters", err.Error())

	err = apperror.MapValidationError(v.Struct(sample{Name: "a#b", Start: "08:00"}))
	assert.Equal(t, "Name is invalid", err.Error())

	err = apperror.MapValidationError(v.Struct(sample{Name: "abc", Start: "25:00"}))
	assert.Equal(t, "StartWorkTime is invalid", err.Error())

	assert.NoError(t, v.Struct(sample{Name: "A (1)", Start: "08:00"}))
}
