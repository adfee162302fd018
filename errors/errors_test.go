package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(ErrCodeEmptySequence, "first of an empty sequence")
		assert.Equal(t, "EMPTY_SEQUENCE: first of an empty sequence", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := Internal(fmt.Errorf("boom"))
		assert.Equal(t, "INTERNAL_ERROR: an unexpected error occurred (cause: boom)", err.Error())
	})
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", EmptySequence("min"), ErrEmptySequence, true},
		{"different code", Exhausted(), ErrEmptySequence, false},
		{"wrapped", fmt.Errorf("evaluate: %w", AlreadyConsumed()), ErrAlreadyConsumed, true},
		{"plain error target", MissingArgument("fn"), stderrors.New("MISSING_ARGUMENT"), false},
		{"invalid argument", InvalidArgument("count", "must not be negative"), ErrInvalidArgument, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stderrors.Is(tc.err, tc.target))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal(cause)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad").
		WithDetail("field", "steps").
		WithDetails(map[string]any{"index": 2, "op": "take"})

	assert.Equal(t, "steps", err.Details["field"])
	assert.Equal(t, 2, err.Details["index"])
	assert.Equal(t, "take", err.Details["op"])
}

func TestConstructors(t *testing.T) {
	t.Run("InvalidArgument", func(t *testing.T) {
		err := InvalidArgument("count", "must not be negative: -1")
		assert.Equal(t, ErrCodeInvalidArgument, err.Code)
		assert.Equal(t, "count must not be negative: -1", err.Message)
		assert.Equal(t, "count", err.Details["argument"])
	})

	t.Run("MissingArgument", func(t *testing.T) {
		err := MissingArgument("predicate")
		assert.Equal(t, ErrCodeMissingArgument, err.Code)
		assert.Equal(t, "predicate is nil", err.Message)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		err := EmptySequence("reduce")
		assert.Equal(t, ErrCodeEmptySequence, err.Code)
		assert.Equal(t, "reduce", err.Details["operation"])
	})

	t.Run("Validation", func(t *testing.T) {
		err := Validation("name: is required")
		assert.Equal(t, ErrCodeInvalidInput, err.Code)
	})
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Exhausted())

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeExhausted, appErr.Code)
	assert.True(t, IsAppError(wrapped))

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.False(t, IsAppError(nil))
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(AlreadyConsumed(), ErrCodeAlreadyConsumed))
	assert.False(t, HasCode(AlreadyConsumed(), ErrCodeExhausted))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrCodeExhausted))
}

func TestIsContractViolation(t *testing.T) {
	assert.True(t, IsContractViolation(ErrCodeExhausted))
	assert.True(t, IsContractViolation(ErrCodeAlreadyConsumed))
	assert.True(t, IsContractViolation(ErrCodeInvalidArgument))
	assert.False(t, IsContractViolation(ErrCodeEmptySequence))
	assert.False(t, IsContractViolation(ErrCodeInvalidInput))
}
