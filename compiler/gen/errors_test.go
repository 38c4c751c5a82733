package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("Error_with_value", func(t *testing.T) {
		err := NewConfigError("platform", "oracle", "must be one of sqlite, mysql, postgres")
		assert.Equal(t, `strata: config error for "platform" (value: oracle): must be one of sqlite, mysql, postgres`, err.Error())
	})

	t.Run("Error_without_value", func(t *testing.T) {
		err := NewConfigError("target", nil, "target directory is required")
		assert.Equal(t, `strata: config error for "target": target directory is required`, err.Error())
	})

	t.Run("Is_sentinel", func(t *testing.T) {
		err := fmt.Errorf("apply options: %w", NewConfigError("workers", 0, "must be positive"))
		assert.ErrorIs(t, err, ErrMissingConfig)
		assert.True(t, IsConfigError(err))
		assert.False(t, IsModelError(err))
	})
}

func TestModelError(t *testing.T) {
	t.Run("Error_message", func(t *testing.T) {
		err := NewModelError("book", "price", `unknown column type "MONEY"`, nil)
		assert.Equal(t, `strata: model error on table book column price: unknown column type "MONEY"`, err.Error())
	})

	t.Run("Unwrap_cause", func(t *testing.T) {
		cause := errors.New("unknown behavior")
		err := NewModelError("book", "", "behavior resolution", cause)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrInvalidModel)
		assert.True(t, IsModelError(err))
	})
}

func TestGenerateError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &GenerateError{File: "book.go", Cause: cause}
	assert.Equal(t, "strata: generate book.go: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.True(t, IsGenerateError(err))
	assert.False(t, IsConfigError(err))
}
