package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{name: "picking_is_valid", status: order.Picking},
		{name: "ready_is_valid", status: order.Ready},
		{name: "dispatched_is_valid", status: order.Dispatched},
		{name: "unknown_is_invalid", status: order.Unknown, wantErr: true},
		{name: "out_of_range_is_invalid", status: order.Status(99), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Picking", order.Picking.String())
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "Dispatched", order.Dispatched.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("picking_to_ready", func(t *testing.T) {
		got, err := order.Picking.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, got)
	})

	t.Run("ready_to_ready_is_idempotent", func(t *testing.T) {
		got, err := order.Ready.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, got)
	})

	t.Run("dispatched_cannot_mark_ready", func(t *testing.T) {
		_, err := order.Dispatched.MarkReady()
		require.Error(t, err)
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("ready_to_dispatched", func(t *testing.T) {
		got, err := order.Ready.Dispatch()
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, got)
	})

	t.Run("picking_cannot_dispatch", func(t *testing.T) {
		_, err := order.Picking.Dispatch()
		require.Error(t, err)
	})

	t.Run("dispatched_cannot_dispatch_again", func(t *testing.T) {
		_, err := order.Dispatched.Dispatch()
		require.Error(t, err)
	})
}

func TestStatus_ForceDispatch(t *testing.T) {
	t.Run("picking_to_dispatched", func(t *testing.T) {
		got, err := order.Picking.ForceDispatch()
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, got)
	})

	t.Run("ready_to_dispatched", func(t *testing.T) {
		got, err := order.Ready.ForceDispatch()
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, got)
	})

	t.Run("dispatched_cannot_force_dispatch_again", func(t *testing.T) {
		_, err := order.Dispatched.ForceDispatch()
		require.Error(t, err)
	})
}

func TestStatus_Recall(t *testing.T) {
	t.Run("dispatched_resumes_at_ready", func(t *testing.T) {
		got, err := order.Dispatched.Recall(order.Ready)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, got)
	})

	t.Run("dispatched_resumes_at_picking", func(t *testing.T) {
		got, err := order.Dispatched.Recall(order.Picking)
		require.NoError(t, err)
		assert.Equal(t, order.Picking, got)
	})

	t.Run("unknown_pre_dispatch_state_falls_back_to_ready", func(t *testing.T) {
		got, err := order.Dispatched.Recall(order.Unknown)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, got)
	})

	t.Run("dispatched_is_not_a_resume_state", func(t *testing.T) {
		_, err := order.Dispatched.Recall(order.Dispatched)
		require.Error(t, err)
	})

	t.Run("ready_cannot_recall", func(t *testing.T) {
		_, err := order.Ready.Recall(order.Ready)
		require.Error(t, err)
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("ready_to_picking", func(t *testing.T) {
		got, err := order.Ready.Reopen()
		require.NoError(t, err)
		assert.Equal(t, order.Picking, got)
	})

	t.Run("dispatched_cannot_reopen", func(t *testing.T) {
		_, err := order.Dispatched.Reopen()
		require.Error(t, err)
	})
}

func TestStatus_IsReady(t *testing.T) {
	assert.False(t, order.Picking.IsReady())
	assert.True(t, order.Ready.IsReady())
	assert.False(t, order.Dispatched.IsReady())
}
