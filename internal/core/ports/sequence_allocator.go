package ports

import "context"

// Names of the named counters the service draws from.
const (
	SequencePickList    = "pick_list_sequence"
	SequenceBatchNumber = "batch_number"
)

// SequenceAllocator hands out gapless-per-draw, strictly increasing numbers
// from named counters: pick list sequences and batch numbers. Two concurrent
// draws from the same counter never receive the same value.
type SequenceAllocator interface {
	// Next atomically increments the named counter and returns its new
	// value. The first draw from a fresh counter returns 1.
	Next(ctx context.Context, name string) (int, error)
}
