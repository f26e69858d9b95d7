package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("match not found")))
	assert.Equal(t, KindConflict, KindOf(Conflict("date already exists")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("invalid credentials")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("join: %w", Conflict("maximum number of registered teams"))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)
	assert.Equal(t, "internal error", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestConflictFields(t *testing.T) {
	err := ConflictFields("incorrect data", map[string]string{
		"championshipNameMinLength": "Championship name cannot have less than 5 characters",
	})
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Len(t, err.Fields, 1)
}
