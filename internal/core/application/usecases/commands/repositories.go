// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest composite it needs so tests
// can mock exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchRepoFactory provides access to the batch ledger within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PickListRepoFactory provides access to the pick list repository within a transaction.
	PickListRepoFactory interface {
		PickListRepository() ports.PickListRepository
	}

	// LoadRepoFactory provides access to the delivery run repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// SequenceFactory provides access to the sequence allocator within a transaction.
	SequenceFactory interface {
		SequenceAllocator() ports.SequenceAllocator
	}

	// CreatePickListUoW manages transactions for pick list creation:
	// the new order, its pick list and the drawn sequence number commit
	// together.
	CreatePickListUoW interface {
		TxManager
		OrderRepoFactory
		PickListRepoFactory
		SequenceFactory
	}

	// CreatePickListUoWFactory creates pick list creation unit of work instances.
	CreatePickListUoWFactory interface {
		Create() CreatePickListUoW
	}

	// PickListUoW manages transactions for operations that touch one pick
	// list only.
	PickListUoW interface {
		TxManager
		PickListRepoFactory
	}

	// PickListUoWFactory creates pick-list-only unit of work instances.
	PickListUoWFactory interface {
		Create() PickListUoW
	}

	// PickingUoW manages transactions for picking operations: a pick list
	// and the batch ledger mutate together.
	PickingUoW interface {
		TxManager
		PickListRepoFactory
		BatchRepoFactory
	}

	// PickingUoWFactory creates picking unit of work instances.
	PickingUoWFactory interface {
		Create() PickingUoW
	}

	// CompletePickListUoW manages transactions for pick list completion:
	// the list and its order transition together.
	CompletePickListUoW interface {
		TxManager
		PickListRepoFactory
		OrderRepoFactory
	}

	// CompletePickListUoWFactory creates completion unit of work instances.
	CompletePickListUoWFactory interface {
		Create() CompletePickListUoW
	}

	// CheckInUoW manages transactions for stock receipt: new batches and
	// their drawn batch numbers commit together.
	CheckInUoW interface {
		TxManager
		BatchRepoFactory
		SequenceFactory
	}

	// CheckInUoWFactory creates stock receipt unit of work instances.
	CheckInUoWFactory interface {
		Create() CheckInUoW
	}

	// LoadUoW manages transactions for delivery run structure changes.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates run-only unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// LoadOrderUoW manages transactions that move a run and its orders
	// together: loading, dispatch and recall.
	LoadOrderUoW interface {
		TxManager
		LoadRepoFactory
		OrderRepoFactory
	}

	// LoadOrderUoWFactory creates run-and-orders unit of work instances.
	LoadOrderUoWFactory interface {
		Create() LoadOrderUoW
	}
)
