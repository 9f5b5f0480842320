package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsAppErrorUnwrapsWrappedErrors(t *testing.T) {
	base := NotFound("staff member", nil)
	wrapped := fmt.Errorf("searching: %w", base)

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	err := InvalidRange("end date precedes start date")
	assert.True(t, Is(err, ErrInvalidRange))
	assert.False(t, Is(err, ErrInvalidArgument))
	assert.False(t, Is(nil, ErrInvalidRange))
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("sql: no rows")
	err := NotFound("patient", cause)

	assert.Equal(t, "patient not found: sql: no rows", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}
