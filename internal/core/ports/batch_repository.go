// Package ports defines the persistence and messaging contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for the inventory batch
// ledger.
type BatchRepository interface {
	// Add persists a new inventory batch.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *batch.InventoryBatch) error

	// Get retrieves a batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.InventoryBatch, error)

	// FindCandidates retrieves the batches holding the given variety and
	// size at the given stock location, ordered by received date ascending
	// so that callers consume the oldest stock first. Batches with no
	// available quantity are excluded.
	FindCandidates(
		ctx context.Context,
		varietyID kernel.UUID,
		size kernel.SizeCode,
		location kernel.LocationCode,
	) ([]*batch.InventoryBatch, error)

	// Reserve atomically takes qty units from the batch's available
	// quantity. The reservation is all-or-nothing: it fails with an
	// InsufficientStockError when fewer than qty units are available, and
	// the availability check and decrement happen as one atomic ledger
	// operation so concurrent reservations can never overdraw the batch.
	Reserve(ctx context.Context, batchID kernel.UUID, qty int) error

	// Release atomically returns qty units to the batch's available
	// quantity, reversing an earlier reservation.
	Release(ctx context.Context, batchID kernel.UUID, qty int) error
}
