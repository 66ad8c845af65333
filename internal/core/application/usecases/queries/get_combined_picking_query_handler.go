package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCombinedPickingQueryHandler builds the combined picking view from the
// database: every unsettled line of every open pick list, folded per article
// and location with the constituents ordered by pick list sequence.
type GetCombinedPickingQueryHandler struct {
	db *gorm.DB
}

// NewGetCombinedPickingQueryHandler creates a handler for the combined
// picking view.
func NewGetCombinedPickingQueryHandler(db *gorm.DB) GetCombinedPickingQueryHandler {
	return GetCombinedPickingQueryHandler{db: db}
}

// Handle executes the query. Rows come back sorted by location, variety and
// size so consecutive rows of the same group fold together; within a group
// the constituents are sorted by pick list sequence. A non-empty PickListIDs
// narrows the view to just those lists.
func (h GetCombinedPickingQueryHandler) Handle(
	ctx context.Context,
	query GetCombinedPickingQuery,
) ([]GetCombinedPickingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetCombinedPickingQueryResponse, 0)

	sql := `
		SELECT
			pi.location,
			pi.variety_id,
			pi.size,
			pl.id,
			pl.sequence,
			pi.target_qty - COALESCE(SUM(bp.qty), 0) AS remaining
		FROM pick_items pi
		JOIN pick_lists pl ON pl.id = pi.pick_list_id
		LEFT JOIN batch_picks bp ON bp.pick_item_id = pi.id
		WHERE pl.status != ? AND pi.status = ?`
	args := []any{picklist.Completed, picklist.ItemPending}

	if ids := query.PickListIDs(); len(ids) > 0 {
		raw := make([]uuid.UUID, len(ids))
		for i, id := range ids {
			raw[i] = id.Bytes()
		}
		sql += ` AND pl.id IN ?`
		args = append(args, raw)
	}

	sql += `
		GROUP BY pi.id, pi.location, pi.variety_id, pi.size, pl.id, pl.sequence
		HAVING pi.target_qty - COALESCE(SUM(bp.qty), 0) > 0
		ORDER BY pi.location, pi.variety_id, pi.size, pl.sequence`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location, size string
		var varietyID, listID uuid.UUID
		var sequence, remaining int

		if err = rows.Scan(
			&location,
			&varietyID,
			&size,
			&listID,
			&sequence,
			&remaining,
		); err != nil {
			return nil, err
		}

		vID, idErr := kernel.UUIDFromBytes(varietyID[:])
		if idErr != nil {
			return nil, idErr
		}
		lID, idErr := kernel.UUIDFromBytes(listID[:])
		if idErr != nil {
			return nil, idErr
		}

		target := CombinedTargetResponse{
			PickListID:   lID,
			Sequence:     sequence,
			RemainingQty: remaining,
		}

		last := len(groups) - 1
		if last >= 0 &&
			groups[last].Location == location &&
			groups[last].VarietyID.IsEqual(vID) &&
			groups[last].Size == size {
			groups[last].RemainingQty += remaining
			groups[last].Targets = append(groups[last].Targets, target)
			continue
		}

		groups = append(groups, GetCombinedPickingQueryResponse{
			Location:     location,
			VarietyID:    vID,
			Size:         size,
			RemainingQty: remaining,
			Targets:      []CombinedTargetResponse{target},
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
