package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_picking", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 3)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Picking, o.Status())
		assert.Equal(t, 3, o.Trolleys())
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, 3)

		require.Error(t, err)
	})

	t.Run("rejects_non_positive_trolleys", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), 0)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), 5, order.Dispatched, order.Ready)

		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, o.Status())
		assert.Equal(t, order.Ready, o.PreDispatchStatus())
	})

	t.Run("restores_forced_pre_dispatch_state", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), 5, order.Dispatched, order.Picking)

		require.NoError(t, err)
		require.NoError(t, o.Recall())
		assert.Equal(t, order.Picking, o.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 5, order.Unknown, order.Unknown)

		require.Error(t, err)
	})

	t.Run("rejects_dispatched_as_pre_dispatch_state", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), 5, order.Dispatched, order.Dispatched)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full_dispatch_and_recall_round_trip", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)

		require.NoError(t, o.MarkReady())
		assert.True(t, o.IsReady())

		require.NoError(t, o.Dispatch())
		assert.Equal(t, order.Dispatched, o.Status())

		require.NoError(t, o.Recall())
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, order.Unknown, o.PreDispatchStatus())
	})

	t.Run("mark_ready_is_idempotent", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)

		require.NoError(t, o.MarkReady())
		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("reopen_returns_to_picking", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)
		require.NoError(t, o.MarkReady())

		require.NoError(t, o.Reopen())
		assert.Equal(t, order.Picking, o.Status())
	})

	t.Run("force_dispatch_mid_pick_recalls_back_to_picking", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)

		require.NoError(t, o.ForceDispatch())
		assert.Equal(t, order.Dispatched, o.Status())
		assert.Equal(t, order.Picking, o.PreDispatchStatus())

		require.NoError(t, o.Recall())
		assert.Equal(t, order.Picking, o.Status())
		assert.False(t, o.IsReady())

		require.Error(t, o.Dispatch())
	})

	t.Run("force_dispatch_of_ready_order_recalls_back_to_ready", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)
		require.NoError(t, o.MarkReady())

		require.NoError(t, o.ForceDispatch())
		require.NoError(t, o.Recall())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("cannot_dispatch_while_picking", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 2)
		require.NoError(t, err)

		require.Error(t, o.Dispatch())
		assert.Equal(t, order.Picking, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(kernel.NewUUID(), 1)
	require.NoError(t, err)
	b, err := order.NewOrder(kernel.NewUUID(), 1)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
