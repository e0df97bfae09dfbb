package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type entity struct {
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("entity must be created via its constructor")

	t.Run("zero_value_entity_fails_validation", func(t *testing.T) {
		var e entity
		require.Error(t, e.guard.Validate(errNotConstructed))
	})

	t.Run("constructed_entity_passes_validation", func(t *testing.T) {
		e := entity{guard: guard.NewConstructorGuard()}
		require.NoError(t, e.guard.Validate(errNotConstructed))
	})
}
