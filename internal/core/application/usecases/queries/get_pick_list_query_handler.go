package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickListQueryHandler reads one pick list with its items and batch
// allocations straight from the database, bypassing the aggregate.
type GetPickListQueryHandler struct {
	db *gorm.DB
}

// NewGetPickListQueryHandler creates a handler for pick list reads.
func NewGetPickListQueryHandler(db *gorm.DB) GetPickListQueryHandler {
	return GetPickListQueryHandler{db: db}
}

// Handle executes the query. Items come back in walking order (location,
// then variety); each item carries its batch allocations with the human
// readable batch numbers.
func (h GetPickListQueryHandler) Handle(
	ctx context.Context,
	query GetPickListQuery,
) (GetPickListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickListQueryResponse{}, err
	}

	var resp GetPickListQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			sequence,
			status,
			assigned_to,
			trolleys,
			note
		FROM pick_lists
		WHERE id = ?
	`, query.PickListID().Bytes()).Row()

	var listID, orderID uuid.UUID
	var status int
	if err := row.Scan(
		&listID,
		&orderID,
		&resp.Sequence,
		&status,
		&resp.AssignedTo,
		&resp.Trolleys,
		&resp.Note,
	); err != nil {
		return GetPickListQueryResponse{}, errs.NewObjectNotFoundError(
			"pick list", query.PickListID().String())
	}

	id, err := kernel.UUIDFromBytes(listID[:])
	if err != nil {
		return GetPickListQueryResponse{}, err
	}
	resp.ID = id

	oID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetPickListQueryResponse{}, err
	}
	resp.OrderID = oID
	resp.Status = picklist.Status(status).String()

	items, err := h.readItems(ctx, query.PickListID())
	if err != nil {
		return GetPickListQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetPickListQueryHandler) readItems(
	ctx context.Context,
	pickListID kernel.UUID,
) ([]PickItemResponse, error) {
	items := make([]PickItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			variety_id,
			size,
			location,
			target_qty,
			status
		FROM pick_items
		WHERE pick_list_id = ?
		ORDER BY location, variety_id, size
	`, pickListID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PickItemResponse
		var itemID, varietyID uuid.UUID
		var status int

		if err = rows.Scan(
			&itemID,
			&varietyID,
			&item.Size,
			&item.Location,
			&item.TargetQty,
			&status,
		); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = id

		vID, idErr := kernel.UUIDFromBytes(varietyID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.VarietyID = vID
		item.Status = picklist.ItemStatus(status).String()

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		picks, pickErr := h.readPicks(ctx, items[i].ID)
		if pickErr != nil {
			return nil, pickErr
		}
		items[i].Picks = picks
		for _, pick := range picks {
			items[i].PickedQty += pick.Qty
		}
	}

	return items, nil
}

func (h GetPickListQueryHandler) readPicks(
	ctx context.Context,
	pickItemID kernel.UUID,
) ([]BatchPickResponse, error) {
	picks := make([]BatchPickResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			bp.batch_id,
			b.batch_number,
			bp.qty
		FROM batch_picks bp
		JOIN inventory_batches b ON b.id = bp.batch_id
		WHERE bp.pick_item_id = ?
		ORDER BY b.batch_number
	`, pickItemID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pick BatchPickResponse
		var batchID uuid.UUID

		if err = rows.Scan(&batchID, &pick.BatchNumber, &pick.Qty); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(batchID[:])
		if idErr != nil {
			return nil, idErr
		}
		pick.BatchID = id

		picks = append(picks, pick)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return picks, nil
}
