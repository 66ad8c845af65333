package services

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"
)

// Ledger is the slice of the inventory ledger the allocator needs: atomic
// reservation of quantity from one batch. A reservation either takes the
// full requested quantity or fails with an InsufficientStockError; it never
// takes a partial amount.
type Ledger interface {
	Reserve(ctx context.Context, batchID kernel.UUID, qty int) error
}

// AllocationResult is the outcome of one allocation pass: the reservations
// that were actually booked on the ledger and the quantity that could not be
// covered.
type AllocationResult struct {
	// Picks are the booked reservations, one per batch drawn from,
	// in the order the batches were consumed (oldest stock first).
	Picks []picklist.BatchPick

	// Shortfall is the requested quantity that no batch could cover.
	// Zero means the request was fully allocated.
	Shortfall int
}

// BatchAllocator is a domain service that fills a requested quantity from
// candidate inventory batches, oldest stock first.
//
// Business rules:
//   - Batches are consumed in first-expired-first-out order: the batch
//     received earliest is drawn down completely before the next one is
//     touched.
//   - Every draw is booked on the ledger atomically before it is counted;
//     a batch that another picker drained in the meantime is skipped, not
//     retried.
//   - Shortfall is tolerated: when the candidates cannot cover the request,
//     the allocator returns what it could book and reports the uncovered
//     remainder instead of failing.
//
// Example usage:
//
//	allocator := services.NewBatchAllocator()
//	result, err := allocator.Allocate(ctx, 50, candidates, ledger)
//	if err != nil {
//	    return err
//	}
//	if result.Shortfall > 0 {
//	    // propose a short pick to the worker
//	}
type BatchAllocator struct{}

// NewBatchAllocator creates a new BatchAllocator instance.
func NewBatchAllocator() BatchAllocator {
	return BatchAllocator{}
}

// Allocate books up to the requested quantity against the candidate batches,
// oldest stock first, and reports the remainder as shortfall.
//
// Parameters:
//   - ctx: Context for the ledger reservations
//   - requested: Quantity to allocate (must be positive)
//   - candidates: Batches to draw from, ordered by received date ascending
//   - ledger: Ledger that books each reservation atomically
//
// Returns:
//   - AllocationResult: Booked picks plus the uncovered shortfall
//   - error: Validation error, or a ledger failure other than depletion
//
// A candidate whose reservation fails with insufficient stock was drained
// by a concurrent picker after the candidate list was read; it is skipped
// and allocation continues with the next batch. Picks already booked when a
// hard ledger error occurs are returned with the error so the caller can
// release them.
func (a BatchAllocator) Allocate(
	ctx context.Context,
	requested int,
	candidates []*batch.InventoryBatch,
	ledger Ledger,
) (AllocationResult, error) {
	if requested <= 0 {
		return AllocationResult{}, errs.NewValueIsInvalidErrorWithCause("requested",
			fmt.Errorf("%d is not greater than 0", requested))
	}

	result := AllocationResult{Shortfall: requested}
	for _, candidate := range candidates {
		if result.Shortfall == 0 {
			break
		}
		if err := candidate.Validate(); err != nil {
			return result, err
		}

		take := min(result.Shortfall, candidate.AvailableQty())
		if take <= 0 {
			continue
		}

		err := ledger.Reserve(ctx, candidate.ID(), take)
		if errors.Is(err, errs.ErrInsufficientStock) {
			// Drained concurrently; the next candidate may still have stock.
			continue
		}
		if err != nil {
			return result, err
		}

		pick, err := picklist.NewBatchPick(candidate.ID(), take)
		if err != nil {
			return result, err
		}

		result.Picks = append(result.Picks, pick)
		result.Shortfall -= take
	}

	return result, nil
}
