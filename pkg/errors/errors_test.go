package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypePredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		predicate func(error) bool
		status    int
	}{
		{"validation", NewValidationError("bad input"), IsValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("garden", "g1"), IsNotFound, http.StatusNotFound},
		{"not found in list", NewNotFoundInListError("basil", "garden g1"), IsNotFoundInList, http.StatusNotFound},
		{"duplicate", NewDuplicateError("basil", "garden g1"), IsDuplicate, http.StatusConflict},
		{"authorization", NewAuthorizationError(""), IsAuthorization, http.StatusForbidden},
		{"store read", NewStoreReadError("get", errors.New("io")), IsStoreRead, http.StatusInternalServerError},
		{"store write", NewStoreWriteError("insert", errors.New("io")), IsStoreWrite, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.predicate(tt.err))
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestPredicatesSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("outer context: %w", NewDuplicateError("basil", "garden g1"))
	assert.True(t, IsDuplicate(err))
	assert.False(t, IsNotFound(err))
}

func TestStoreErrorsUnwrapToCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreReadError("scan", cause)
	assert.ErrorIs(t, err, cause)
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, "saving garden")
	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, wrapped, cause)
}
