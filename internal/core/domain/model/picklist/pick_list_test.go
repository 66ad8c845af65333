package picklist_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, targets ...int) *picklist.PickList {
	t.Helper()

	items := make([]*picklist.PickItem, len(targets))
	for i, target := range targets {
		items[i] = newTestItem(t, target)
	}

	list, err := picklist.NewPickList(kernel.NewUUID(), kernel.NewUUID(), 1, items)
	require.NoError(t, err)
	return list
}

func TestNewPickList(t *testing.T) {
	t.Run("valid_list_starts_pending", func(t *testing.T) {
		list := newTestList(t, 10, 20)

		require.NoError(t, list.Validate())
		assert.Equal(t, picklist.Pending, list.Status())
		assert.Len(t, list.Items(), 2)
		assert.Empty(t, list.AssignedTo())
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := picklist.NewPickList(kernel.NewUUID(), kernel.NewUUID(), 1, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_duplicate_items", func(t *testing.T) {
		item := newTestItem(t, 10)

		_, err := picklist.NewPickList(kernel.NewUUID(), kernel.NewUUID(), 1,
			[]*picklist.PickItem{item, item})

		require.Error(t, err)
	})

	t.Run("rejects_non_positive_sequence", func(t *testing.T) {
		_, err := picklist.NewPickList(kernel.NewUUID(), kernel.NewUUID(), 0,
			[]*picklist.PickItem{newTestItem(t, 10)})

		require.Error(t, err)
	})
}

func TestPickList_Start(t *testing.T) {
	t.Run("claims_and_moves_to_in_progress", func(t *testing.T) {
		list := newTestList(t, 10)

		require.NoError(t, list.Start("team-a"))

		assert.Equal(t, picklist.InProgress, list.Status())
		assert.Equal(t, "team-a", list.AssignedTo())
	})

	t.Run("repeated_start_keeps_first_claimer", func(t *testing.T) {
		list := newTestList(t, 10)
		require.NoError(t, list.Start("team-a"))

		require.NoError(t, list.Start("team-b"))

		assert.Equal(t, "team-a", list.AssignedTo())
	})

	t.Run("completed_list_cannot_be_started", func(t *testing.T) {
		list := newTestList(t, 10)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))
		_, err := list.Complete(1, "")
		require.NoError(t, err)

		require.ErrorIs(t, list.Start("team-a"), picklist.ErrPickListCompleted)
	})
}

func TestPickList_ApplyItemPicks(t *testing.T) {
	t.Run("first_allocation_starts_the_list", func(t *testing.T) {
		list := newTestList(t, 50)

		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 30)))

		assert.Equal(t, picklist.InProgress, list.Status())
		assert.Equal(t, 30, list.Items()[0].PickedQty())
	})

	t.Run("unknown_item_fails", func(t *testing.T) {
		list := newTestList(t, 50)

		err := list.ApplyItemPicks(kernel.NewUUID(), newPick(t, 10))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("completed_list_rejects_allocations", func(t *testing.T) {
		list := newTestList(t, 10)
		itemID := list.Items()[0].ID()
		require.NoError(t, list.ApplyItemPicks(itemID, newPick(t, 10)))
		_, err := list.Complete(1, "")
		require.NoError(t, err)

		err = list.ApplyItemPicks(itemID, newPick(t, 1))

		require.ErrorIs(t, err, picklist.ErrPickListCompleted)
	})
}

func TestPickList_MarkItemShort(t *testing.T) {
	list := newTestList(t, 50)
	itemID := list.Items()[0].ID()
	require.NoError(t, list.ApplyItemPicks(itemID, newPick(t, 30)))

	require.NoError(t, list.MarkItemShort(itemID))

	assert.Equal(t, picklist.ItemShort, list.Items()[0].Status())
	assert.Empty(t, list.PendingItems())
}

func TestPickList_ReopenItem(t *testing.T) {
	t.Run("returns_released_picks", func(t *testing.T) {
		list := newTestList(t, 20)
		itemID := list.Items()[0].ID()
		require.NoError(t, list.ApplyItemPicks(itemID, newPick(t, 20)))

		released, err := list.ReopenItem(itemID)

		require.NoError(t, err)
		require.Len(t, released, 1)
		assert.Equal(t, 20, released[0].Qty())
		assert.Equal(t, picklist.ItemPending, list.Items()[0].Status())
	})

	t.Run("completed_list_rejects_reopen_item", func(t *testing.T) {
		list := newTestList(t, 10)
		itemID := list.Items()[0].ID()
		require.NoError(t, list.ApplyItemPicks(itemID, newPick(t, 10)))
		_, err := list.Complete(1, "")
		require.NoError(t, err)

		_, err = list.ReopenItem(itemID)

		require.ErrorIs(t, err, picklist.ErrPickListCompleted)
	})
}

func TestPickList_Complete(t *testing.T) {
	t.Run("fails_while_items_are_pending", func(t *testing.T) {
		list := newTestList(t, 10, 20)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))

		_, err := list.Complete(2, "")

		require.ErrorIs(t, err, picklist.ErrPickListHasPendingItems)
		assert.Equal(t, picklist.InProgress, list.Status())
	})

	t.Run("succeeds_with_mix_of_picked_and_short", func(t *testing.T) {
		list := newTestList(t, 10, 20)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))
		require.NoError(t, list.MarkItemShort(list.Items()[1].ID()))

		changed, err := list.Complete(3, "two trolleys, one shelf")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, picklist.Completed, list.Status())
		assert.Equal(t, 3, list.Trolleys())
		assert.Equal(t, "two trolleys, one shelf", list.Note())
	})

	t.Run("repeated_completion_is_a_no_op_success", func(t *testing.T) {
		list := newTestList(t, 10)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))

		changed, err := list.Complete(2, "first")
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = list.Complete(9, "retry must not overwrite")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 2, list.Trolleys())
		assert.Equal(t, "first", list.Note())
	})

	t.Run("rejects_negative_trolleys", func(t *testing.T) {
		list := newTestList(t, 10)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))

		_, err := list.Complete(-1, "")

		require.Error(t, err)
	})
}

func TestPickList_Reopen(t *testing.T) {
	t.Run("completed_list_reopens_to_in_progress", func(t *testing.T) {
		list := newTestList(t, 10)
		require.NoError(t, list.ApplyItemPicks(list.Items()[0].ID(), newPick(t, 10)))
		_, err := list.Complete(2, "meta")
		require.NoError(t, err)

		require.NoError(t, list.Reopen())

		assert.Equal(t, picklist.InProgress, list.Status())
		assert.Equal(t, 0, list.Trolleys())
		assert.Empty(t, list.Note())
	})

	t.Run("pending_list_cannot_reopen", func(t *testing.T) {
		list := newTestList(t, 10)

		require.Error(t, list.Reopen())
	})
}

func TestRestorePickList(t *testing.T) {
	t.Run("restores_completed_list", func(t *testing.T) {
		items := []*picklist.PickItem{newTestItem(t, 10)}
		require.NoError(t, items[0].MarkShort())

		list, err := picklist.RestorePickList(
			kernel.NewUUID(), kernel.NewUUID(), 7,
			picklist.Completed, "team-a", 2, "note", items)

		require.NoError(t, err)
		assert.Equal(t, picklist.Completed, list.Status())
		assert.Equal(t, "team-a", list.AssignedTo())
		assert.Equal(t, 7, list.Sequence())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := picklist.RestorePickList(
			kernel.NewUUID(), kernel.NewUUID(), 7,
			picklist.Unknown, "", 0, "", []*picklist.PickItem{newTestItem(t, 10)})

		require.Error(t, err)
	})
}
