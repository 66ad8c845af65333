package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picklist"

	"github.com/stretchr/testify/require"
)

func testSize(t *testing.T) kernel.SizeCode {
	t.Helper()

	size, err := kernel.NewSizeCode("P9")
	require.NoError(t, err)
	return size
}

func testLocation(t *testing.T) kernel.LocationCode {
	t.Helper()

	location, err := kernel.NewLocationCode("TUNNEL-3")
	require.NoError(t, err)
	return location
}

func newOpenList(t *testing.T, sequence int, targets ...int) *picklist.PickList {
	t.Helper()

	items := make([]*picklist.PickItem, len(targets))
	for i, target := range targets {
		item, err := picklist.NewPickItem(
			kernel.NewUUID(), kernel.NewUUID(), testSize(t), testLocation(t), target)
		require.NoError(t, err)
		items[i] = item
	}

	list, err := picklist.NewPickList(kernel.NewUUID(), kernel.NewUUID(), sequence, items)
	require.NoError(t, err)
	return list
}

func newReadyOrder(t *testing.T, trolleys int) *order.Order {
	t.Helper()

	ord, err := order.NewOrder(kernel.NewUUID(), trolleys)
	require.NoError(t, err)
	require.NoError(t, ord.MarkReady())
	return ord
}

func newPickingOrder(t *testing.T, trolleys int) *order.Order {
	t.Helper()

	ord, err := order.NewOrder(kernel.NewUUID(), trolleys)
	require.NoError(t, err)
	return ord
}

func newPlannedRun(t *testing.T, capacity int) *load.DeliveryRun {
	t.Helper()

	run, err := load.NewDeliveryRun(
		kernel.NewUUID(),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		"Van Veen Transport",
		capacity,
	)
	require.NoError(t, err)
	return run
}

func newLoadedRun(t *testing.T, capacity int, orders ...*order.Order) *load.DeliveryRun {
	t.Helper()

	run := newPlannedRun(t, capacity)
	for _, ord := range orders {
		require.NoError(t, run.AddOrder(ord.ID(), ord.Trolleys()))
	}
	return run
}
