package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ParseAndString(t *testing.T) {
	for _, s := range order.Statuses() {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("unknown")
	require.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCompleted.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	for _, s := range []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusWashing,
		order.StatusReady, order.StatusPickedUp, order.StatusDelivering,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_StaffUpdate(t *testing.T) {
	t.Run("any non-terminal status may move to any status", func(t *testing.T) {
		for _, from := range order.Statuses() {
			if from.IsTerminal() {
				continue
			}
			for _, to := range order.Statuses() {
				next, err := from.Transition(order.ActionStaffUpdate, to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("terminal statuses accept nothing, not even themselves", func(t *testing.T) {
		for _, from := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			for _, to := range order.Statuses() {
				_, err := from.Transition(order.ActionStaffUpdate, to)
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
				assert.Contains(t, err.Error(), "order is terminal")
			}
		}
	})

	t.Run("unknown target is a validation error", func(t *testing.T) {
		_, err := order.StatusPending.Transition(order.ActionStaffUpdate, order.StatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_SettleCash(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.StatusReady, order.StatusCompleted, true},
		{order.StatusReady, order.StatusDelivering, true},
		{order.StatusReady, order.StatusCancelled, false},
		{order.StatusWashing, order.StatusCompleted, false},
		{order.StatusDelivering, order.StatusCompleted, false},
		{order.StatusPending, order.StatusDelivering, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(order.ActionSettleCash, tt.to))

			_, err := tt.from.Transition(order.ActionSettleCash, tt.to)
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "settle_cash does not allow this move")
		})
	}
}

func TestStatus_UnknownActionAllowsNothing(t *testing.T) {
	assert.False(t, order.StatusPending.CanTransition(order.ActionUnknown, order.StatusProcessing))
}
