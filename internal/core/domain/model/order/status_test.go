package order_test

import (
	"errors"
	"testing"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{order.Pending, order.Preparing, order.Ready, order.Delivered, order.Cancelled}
}

// TestStatus_CanTransitionTo_FullTable verifies every from/to pair against
// the explicit transition table rather than inferring it.
func TestStatus_CanTransitionTo_FullTable(t *testing.T) {
	allowed := map[order.Status]map[order.Status]bool{
		order.Pending:   {order.Preparing: true, order.Cancelled: true},
		order.Preparing: {order.Ready: true, order.Cancelled: true},
		order.Ready:     {order.Delivered: true, order.Cancelled: true},
		order.Delivered: {},
		order.Cancelled: {},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			err := from.CanTransitionTo(to)
			if allowed[from][to] {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}
}

func TestStatus_CanTransitionTo_SkippingStepsIsRejected(t *testing.T) {
	err := order.Pending.CanTransitionTo(order.Delivered)

	require.Error(t, err)

	var invalid *order.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, order.Pending, invalid.From)
	assert.Equal(t, order.Delivered, invalid.To)
}

func TestStatus_CanTransitionTo_TerminalStatesAreAbsorbing(t *testing.T) {
	for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
		for _, to := range allStatuses() {
			err := terminal.CanTransitionTo(to)

			require.Error(t, err, "%s -> %s", terminal, to)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "terminal")
		}
	}
}

func TestStatus_CanTransitionTo_UnknownIsRejectedBothWays(t *testing.T) {
	require.Error(t, order.Unknown.CanTransitionTo(order.Preparing))
	require.Error(t, order.Pending.CanTransitionTo(order.Unknown))
	require.Error(t, order.Pending.CanTransitionTo(order.Status(42)))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_SetsReadyTime(t *testing.T) {
	assert.False(t, order.Pending.SetsReadyTime())
	assert.False(t, order.Preparing.SetsReadyTime())
	assert.True(t, order.Ready.SetsReadyTime())
	assert.True(t, order.Delivered.SetsReadyTime())
	assert.False(t, order.Cancelled.SetsReadyTime())
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.Preparing, "PREPARING"},
		{order.Ready, "READY"},
		{order.Delivered, "DELIVERED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("recognized values round-trip", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unrecognized value is rejected", func(t *testing.T) {
		_, err := order.StatusFromString("COOKING")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("lower case is rejected", func(t *testing.T) {
		_, err := order.StatusFromString("pending")

		require.Error(t, err)
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		assert.NoError(t, s.Validate(), "%s should be valid", s)
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestInvalidTransitionError_Unwrap(t *testing.T) {
	err := &order.InvalidTransitionError{From: order.Ready, To: order.Preparing}

	assert.True(t, errors.Is(err, order.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "READY")
	assert.Contains(t, err.Error(), "PREPARING")
}
