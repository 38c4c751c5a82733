package strata_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/strata"
)

func TestDuplicateEntityError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := strata.NewDuplicateEntityError("table", "book", "bookstore")
		assert.Equal(t, `strata: duplicate table "book" in bookstore`, err.Error())
	})

	t.Run("Error_without_scope", func(t *testing.T) {
		err := strata.NewDuplicateEntityError("column", "title", "")
		assert.Equal(t, `strata: duplicate column "title"`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := strata.NewDuplicateEntityError("table", "book", "bookstore")
		assert.True(t, errors.Is(err, strata.ErrDuplicateEntity))
	})

	t.Run("IsDuplicateEntityError", func(t *testing.T) {
		err := strata.NewDuplicateEntityError("table", "book", "bookstore")
		assert.True(t, strata.IsDuplicateEntityError(err))

		// Wrapped error
		wrapped := fmt.Errorf("adding table: %w", err)
		assert.True(t, strata.IsDuplicateEntityError(wrapped))

		// Sentinel error
		assert.True(t, strata.IsDuplicateEntityError(strata.ErrDuplicateEntity))

		// Non-matching error
		assert.False(t, strata.IsDuplicateEntityError(errors.New("other error")))
		assert.False(t, strata.IsDuplicateEntityError(nil))
	})
}

func TestUnknownBehaviorError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := strata.NewUnknownBehaviorError("sluggable")
		assert.Equal(t, `strata: unknown behavior "sluggable"`, err.Error())
	})

	t.Run("Error_with_known", func(t *testing.T) {
		err := strata.NewUnknownBehaviorError("sluggable", "i18n", "timestampable")
		assert.Equal(t, `strata: unknown behavior "sluggable" (registered: i18n, timestampable)`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := strata.NewUnknownBehaviorError("sluggable")
		assert.True(t, errors.Is(err, strata.ErrUnknownBehavior))
	})

	t.Run("IsUnknownBehaviorError", func(t *testing.T) {
		err := strata.NewUnknownBehaviorError("sluggable")
		assert.True(t, strata.IsUnknownBehaviorError(err))
		assert.True(t, strata.IsUnknownBehaviorError(fmt.Errorf("resolve: %w", err)))
		assert.True(t, strata.IsUnknownBehaviorError(strata.ErrUnknownBehavior))
		assert.False(t, strata.IsUnknownBehaviorError(errors.New("other error")))
		assert.False(t, strata.IsUnknownBehaviorError(nil))
	})
}

func TestInvalidArgumentError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := strata.NewInvalidArgumentError("defaultStringFormat", "TOML", "must be one of XML, YAML, JSON, CSV")
		assert.Equal(t, "strata: invalid defaultStringFormat TOML: must be one of XML, YAML, JSON, CSV", err.Error())
	})

	t.Run("Error_without_value", func(t *testing.T) {
		err := strata.NewInvalidArgumentError("foreignTable", nil, "references unknown table")
		assert.Equal(t, "strata: invalid foreignTable: references unknown table", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := strata.NewInvalidArgumentError("locale", "zz_ZZ", "not a valid language tag")
		assert.True(t, errors.Is(err, strata.ErrInvalidArgument))
	})

	t.Run("IsInvalidArgumentError", func(t *testing.T) {
		err := strata.NewInvalidArgumentError("locale", "zz_ZZ", "not a valid language tag")
		assert.True(t, strata.IsInvalidArgumentError(err))
		assert.True(t, strata.IsInvalidArgumentError(fmt.Errorf("finalize: %w", err)))
		assert.True(t, strata.IsInvalidArgumentError(strata.ErrInvalidArgument))
		assert.False(t, strata.IsInvalidArgumentError(errors.New("other error")))
		assert.False(t, strata.IsInvalidArgumentError(nil))
	})
}

func TestBuildProperties(t *testing.T) {
	p := strata.BuildProperties{"tablePrefix": "app_"}
	assert.Equal(t, "app_", p.BuildProperty("tablePrefix"))
	assert.Equal(t, "", p.BuildProperty("missing"))
}
