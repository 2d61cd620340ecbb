package guard_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("PickupWindow must be created via NewPickupWindow")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quote struct {
		fee   int64
		guard guard.ConstructorGuard
	}
	errQuote := errors.New("quote must be created via newQuote")

	newQuote := func(fee int64) (quote, error) {
		if fee < 0 {
			return quote{}, errors.New("fee must not be negative")
		}
		return quote{fee: fee, guard: guard.NewConstructorGuard()}, nil
	}

	q, err := newQuote(15000)
	require.NoError(t, err)
	require.NoError(t, q.guard.Validate(errQuote))

	var zero quote
	require.ErrorIs(t, zero.guard.Validate(errQuote), errQuote)

	_, err = newQuote(-1)
	require.Error(t, err)
}
