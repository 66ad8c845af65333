package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger books reservations against its own stock figures, which may lag
// behind the candidate snapshots the allocator works from.
type fakeLedger struct {
	stock    map[kernel.UUID]int
	failWith error
}

func (f *fakeLedger) Reserve(_ context.Context, batchID kernel.UUID, qty int) error {
	if f.failWith != nil {
		return f.failWith
	}

	available := f.stock[batchID]
	if qty > available {
		return errs.NewInsufficientStockError(batchID.String(), qty, available)
	}
	f.stock[batchID] -= qty
	return nil
}

func newCandidate(t *testing.T, receivedAt time.Time, qty int) *batch.InventoryBatch {
	t.Helper()

	size, err := kernel.NewSizeCode("P9")
	require.NoError(t, err)
	location, err := kernel.NewLocationCode("TUNNEL-3")
	require.NoError(t, err)

	b, err := batch.NewInventoryBatch(
		kernel.NewUUID(), 1042, kernel.NewUUID(), size, location, receivedAt, qty)
	require.NoError(t, err)
	return b
}

func TestBatchAllocator_Allocate(t *testing.T) {
	allocator := services.NewBatchAllocator()
	base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("drains_oldest_batch_before_touching_next", func(t *testing.T) {
		oldest := newCandidate(t, base, 30)
		newer := newCandidate(t, base.AddDate(0, 0, 7), 40)
		ledger := &fakeLedger{stock: map[kernel.UUID]int{
			oldest.ID(): 30,
			newer.ID():  40,
		}}

		result, err := allocator.Allocate(context.Background(), 50,
			[]*batch.InventoryBatch{oldest, newer}, ledger)

		require.NoError(t, err)
		assert.Zero(t, result.Shortfall)
		require.Len(t, result.Picks, 2)
		assert.True(t, result.Picks[0].BatchID().IsEqual(oldest.ID()))
		assert.Equal(t, 30, result.Picks[0].Qty())
		assert.True(t, result.Picks[1].BatchID().IsEqual(newer.ID()))
		assert.Equal(t, 20, result.Picks[1].Qty())
		assert.Equal(t, 20, ledger.stock[newer.ID()])
	})

	t.Run("reports_shortfall_when_candidates_run_out", func(t *testing.T) {
		only := newCandidate(t, base, 30)
		ledger := &fakeLedger{stock: map[kernel.UUID]int{only.ID(): 30}}

		result, err := allocator.Allocate(context.Background(), 50,
			[]*batch.InventoryBatch{only}, ledger)

		require.NoError(t, err)
		assert.Equal(t, 20, result.Shortfall)
		require.Len(t, result.Picks, 1)
		assert.Equal(t, 30, result.Picks[0].Qty())
	})

	t.Run("skips_batch_drained_by_concurrent_picker", func(t *testing.T) {
		drained := newCandidate(t, base, 30)
		intact := newCandidate(t, base.AddDate(0, 0, 7), 40)
		// The ledger says the oldest batch is already empty even though the
		// candidate snapshot still shows 30.
		ledger := &fakeLedger{stock: map[kernel.UUID]int{
			drained.ID(): 0,
			intact.ID():  40,
		}}

		result, err := allocator.Allocate(context.Background(), 25,
			[]*batch.InventoryBatch{drained, intact}, ledger)

		require.NoError(t, err)
		assert.Zero(t, result.Shortfall)
		require.Len(t, result.Picks, 1)
		assert.True(t, result.Picks[0].BatchID().IsEqual(intact.ID()))
		assert.Equal(t, 25, result.Picks[0].Qty())
	})

	t.Run("stops_once_request_is_covered", func(t *testing.T) {
		first := newCandidate(t, base, 30)
		second := newCandidate(t, base.AddDate(0, 0, 7), 40)
		ledger := &fakeLedger{stock: map[kernel.UUID]int{
			first.ID():  30,
			second.ID(): 40,
		}}

		result, err := allocator.Allocate(context.Background(), 10,
			[]*batch.InventoryBatch{first, second}, ledger)

		require.NoError(t, err)
		require.Len(t, result.Picks, 1)
		assert.Equal(t, 10, result.Picks[0].Qty())
		assert.Equal(t, 40, ledger.stock[second.ID()])
	})

	t.Run("returns_booked_picks_with_hard_ledger_error", func(t *testing.T) {
		only := newCandidate(t, base, 30)
		ledgerErr := errors.New("connection reset")
		ledger := &fakeLedger{failWith: ledgerErr}

		result, err := allocator.Allocate(context.Background(), 10,
			[]*batch.InventoryBatch{only}, ledger)

		require.ErrorIs(t, err, ledgerErr)
		assert.Empty(t, result.Picks)
	})

	t.Run("rejects_non_positive_request", func(t *testing.T) {
		_, err := allocator.Allocate(context.Background(), 0, nil, &fakeLedger{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
