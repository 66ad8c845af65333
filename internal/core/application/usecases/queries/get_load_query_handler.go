package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadQueryHandler reads one delivery run with its loaded orders straight
// from the database.
type GetLoadQueryHandler struct {
	db *gorm.DB
}

// NewGetLoadQueryHandler creates a handler for delivery run reads.
func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

// Handle executes the query. Items come back in unloading sequence; the fill
// percentage is computed from the loaded trolleys against the vehicle
// capacity.
func (h GetLoadQueryHandler) Handle(
	ctx context.Context,
	query GetLoadQuery,
) (GetLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadQueryResponse{}, err
	}

	var resp GetLoadQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			scheduled_date,
			carrier,
			vehicle_capacity,
			status,
			override_reason
		FROM loads
		WHERE id = ?
	`, query.LoadID().Bytes()).Row()

	var loadID uuid.UUID
	var status int
	if err := row.Scan(
		&loadID,
		&resp.ScheduledDate,
		&resp.Carrier,
		&resp.VehicleCapacity,
		&status,
		&resp.OverrideReason,
	); err != nil {
		return GetLoadQueryResponse{}, errs.NewObjectNotFoundError(
			"load", query.LoadID().String())
	}

	id, err := kernel.UUIDFromBytes(loadID[:])
	if err != nil {
		return GetLoadQueryResponse{}, err
	}
	resp.ID = id
	resp.Status = load.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.order_id,
			li.sequence,
			li.trolleys,
			o.status
		FROM load_items li
		JOIN orders o ON o.id = li.order_id
		WHERE li.load_id = ?
		ORDER BY li.sequence
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return GetLoadQueryResponse{}, err
	}
	defer rows.Close()

	resp.Items = make([]LoadItemResponse, 0)
	for rows.Next() {
		var item LoadItemResponse
		var orderID uuid.UUID
		var orderStatus int

		if err = rows.Scan(&orderID, &item.Sequence, &item.Trolleys, &orderStatus); err != nil {
			return GetLoadQueryResponse{}, err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return GetLoadQueryResponse{}, idErr
		}
		item.OrderID = oID
		item.OrderStatus = order.Status(orderStatus).String()

		resp.TotalTrolleys += item.Trolleys
		resp.Items = append(resp.Items, item)
	}
	if err = rows.Err(); err != nil {
		return GetLoadQueryResponse{}, err
	}

	if resp.VehicleCapacity > 0 {
		resp.FillPercentage = resp.TotalTrolleys * 100 / resp.VehicleCapacity
	}

	return resp, nil
}
