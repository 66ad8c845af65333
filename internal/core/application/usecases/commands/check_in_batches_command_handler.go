package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// ErrAllReceiptsFailed is returned when no receipt of a stock check-in could
// be processed. As long as at least one receipt succeeds the check-in
// reports success with a per-receipt error list.
var ErrAllReceiptsFailed = errors.New("no receipt could be checked in")

// CheckInResult reports the outcome of a stock receipt per incoming batch.
type CheckInResult struct {
	// CheckedIn lists the created batches in receipt order, nil entries
	// marking the receipts that failed.
	CheckedIn []*batch.InventoryBatch

	// Errors holds one entry per receipt, nil for the receipts that
	// succeeded.
	Errors []error
}

// Succeeded returns how many receipts were checked in.
func (r CheckInResult) Succeeded() int {
	n := 0
	for _, b := range r.CheckedIn {
		if b != nil {
			n++
		}
	}
	return n
}

// CheckInBatchesCommandHandler handles stock receipt.
//
// Each receipt is processed in its own transaction with its own drawn batch
// number, so one failing receipt never rolls back its siblings. The overall
// operation succeeds when at least one receipt succeeded.
type CheckInBatchesCommandHandler struct {
	uowFactory CheckInUoWFactory
}

// NewCheckInBatchesCommandHandler creates a handler for stock receipts.
func NewCheckInBatchesCommandHandler(uowFactory CheckInUoWFactory) CheckInBatchesCommandHandler {
	return CheckInBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock receipt and reports the per-receipt outcome.
func (h *CheckInBatchesCommandHandler) Handle(ctx context.Context, cmd CheckInBatchesCommand) (CheckInResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckInResult{}, err
	}

	receipts := cmd.Receipts()
	result := CheckInResult{
		CheckedIn: make([]*batch.InventoryBatch, len(receipts)),
		Errors:    make([]error, len(receipts)),
	}

	for i, receipt := range receipts {
		created, err := h.checkInOne(ctx, receipt)
		if err != nil {
			result.Errors[i] = err
			continue
		}
		result.CheckedIn[i] = created
	}

	if result.Succeeded() == 0 {
		return result, ErrAllReceiptsFailed
	}
	return result, nil
}

func (h *CheckInBatchesCommandHandler) checkInOne(ctx context.Context, receipt BatchReceipt) (*batch.InventoryBatch, error) {
	if err := receipt.validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchNumber, err := uow.SequenceAllocator().Next(ctx, ports.SequenceBatchNumber)
	if err != nil {
		return nil, err
	}

	created, err := batch.NewInventoryBatch(
		kernel.NewUUID(),
		batchNumber,
		receipt.VarietyID,
		receipt.Size,
		receipt.Location,
		receipt.ReceivedAt,
		receipt.Qty,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.BatchRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}
