package services

import (
	"fmt"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"
)

// CombinedLine is one row of a combined picking view: every open order line
// that wants the same article from the same stock location, folded into a
// single quantity a worker can gather in one walk.
type CombinedLine struct {
	Location  kernel.LocationCode
	VarietyID kernel.UUID
	Size      kernel.SizeCode

	// RemainingQty is the total still to pick across all targets.
	RemainingQty int

	// Targets lists the underlying order lines, oldest order first.
	Targets []CombinedTarget
}

// CombinedTarget identifies one order line behind a combined line.
type CombinedTarget struct {
	ListID       kernel.UUID
	ItemID       kernel.UUID
	Sequence     int
	RemainingQty int
}

// DistributedPick records what one order line received from a combined pick
// confirmation.
type DistributedPick struct {
	ListID kernel.UUID
	ItemID kernel.UUID
	Picks  []picklist.BatchPick
}

// CombinedPicking is a domain service that lets one worker gather stock for
// several orders in a single walk and then split the gathered quantity back
// over the underlying order lines.
//
// Business rules:
//   - Only unsettled items of open pick lists participate; completed lists
//     and already picked or short items are left alone.
//   - A confirmed quantity may never exceed what the combined line still
//     needs.
//   - Distribution is first-fit by pick list sequence: the oldest order is
//     topped up to its target before the next one receives anything, so a
//     short gather shorts the newest orders, never the oldest.
type CombinedPicking struct{}

// NewCombinedPicking creates a new CombinedPicking instance.
func NewCombinedPicking() CombinedPicking {
	return CombinedPicking{}
}

// Aggregate folds the unsettled items of the given pick lists into combined
// lines, one per stock location, variety and size. Lines are ordered by
// location, variety and size; targets within a line by pick list sequence
// ascending.
func (c CombinedPicking) Aggregate(lists []*picklist.PickList) ([]CombinedLine, error) {
	type groupKey struct {
		location  kernel.LocationCode
		varietyID kernel.UUID
		size      kernel.SizeCode
	}

	groups := make(map[groupKey]*CombinedLine)
	for _, list := range lists {
		if err := list.Validate(); err != nil {
			return nil, err
		}
		if list.IsCompleted() {
			continue
		}

		for _, item := range list.Items() {
			if item.Status().IsSettled() || item.RemainingQty() == 0 {
				continue
			}

			key := groupKey{
				location:  item.Location(),
				varietyID: item.VarietyID(),
				size:      item.Size(),
			}
			line, ok := groups[key]
			if !ok {
				line = &CombinedLine{
					Location:  item.Location(),
					VarietyID: item.VarietyID(),
					Size:      item.Size(),
				}
				groups[key] = line
			}

			line.RemainingQty += item.RemainingQty()
			line.Targets = append(line.Targets, CombinedTarget{
				ListID:       list.ID(),
				ItemID:       item.ID(),
				Sequence:     list.Sequence(),
				RemainingQty: item.RemainingQty(),
			})
		}
	}

	lines := make([]CombinedLine, 0, len(groups))
	for _, line := range groups {
		sort.Slice(line.Targets, func(i, j int) bool {
			return line.Targets[i].Sequence < line.Targets[j].Sequence
		})
		lines = append(lines, *line)
	}

	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].Location.IsEqual(lines[j].Location) {
			return lines[i].Location.String() < lines[j].Location.String()
		}
		if !lines[i].VarietyID.IsEqual(lines[j].VarietyID) {
			return lines[i].VarietyID.String() < lines[j].VarietyID.String()
		}
		return lines[i].Size.String() < lines[j].Size.String()
	})

	return lines, nil
}

// Distribute splits a confirmed combined pick over the order lines that want
// the article, oldest order first, and applies the resulting allocations to
// the pick lists in place.
//
// Parameters:
//   - lists: The open pick lists participating in the combined pick
//   - location, varietyID, size: The combined line being confirmed
//   - picks: The batch reservations gathered by the worker
//
// Returns:
//   - []DistributedPick: What each order line received, in sequence order
//   - error: OverAllocationError when the confirmed quantity exceeds what
//     the combined line still needs, or a validation error
//
// Each target is filled up to its remaining quantity before the next target
// receives anything. A batch reservation that straddles two targets is split
// into two allocations of the same batch.
func (c CombinedPicking) Distribute(
	lists []*picklist.PickList,
	location kernel.LocationCode,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	picks []picklist.BatchPick,
) ([]DistributedPick, error) {
	total := 0
	for _, pick := range picks {
		if err := pick.Validate(); err != nil {
			return nil, err
		}
		total += pick.Qty()
	}
	if total <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("picks",
			fmt.Errorf("confirmed quantity %d is not greater than 0", total))
	}

	type target struct {
		list *picklist.PickList
		item *picklist.PickItem
	}

	var targets []target
	capacity := 0
	for _, list := range lists {
		if err := list.Validate(); err != nil {
			return nil, err
		}
		if list.IsCompleted() {
			continue
		}
		for _, item := range list.Items() {
			if item.Status().IsSettled() || item.RemainingQty() == 0 {
				continue
			}
			if !item.Location().IsEqual(location) ||
				!item.VarietyID().IsEqual(varietyID) ||
				!item.Size().IsEqual(size) {
				continue
			}
			targets = append(targets, target{list: list, item: item})
			capacity += item.RemainingQty()
		}
	}

	if total > capacity {
		return nil, errs.NewOverAllocationError(total, capacity)
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].list.Sequence() < targets[j].list.Sequence()
	})

	queue := pickQueue{picks: picks}
	var distributed []DistributedPick
	left := total
	for _, tgt := range targets {
		if left == 0 {
			break
		}

		give := min(left, tgt.item.RemainingQty())
		portion, err := queue.take(give)
		if err != nil {
			return nil, err
		}

		if err = tgt.list.ApplyItemPicks(tgt.item.ID(), portion...); err != nil {
			return nil, err
		}

		distributed = append(distributed, DistributedPick{
			ListID: tgt.list.ID(),
			ItemID: tgt.item.ID(),
			Picks:  portion,
		})
		left -= give
	}

	return distributed, nil
}

// pickQueue doles out quantity from a sequence of batch reservations,
// splitting a reservation when a taker needs only part of it.
type pickQueue struct {
	picks []picklist.BatchPick
	idx   int
	used  int
}

func (q *pickQueue) take(qty int) ([]picklist.BatchPick, error) {
	var out []picklist.BatchPick
	for qty > 0 {
		if q.idx >= len(q.picks) {
			return nil, errs.NewValueIsInvalidErrorWithCause("picks",
				fmt.Errorf("%d units requested beyond the confirmed total", qty))
		}

		current := q.picks[q.idx]
		available := current.Qty() - q.used
		take := min(qty, available)

		pick, err := picklist.NewBatchPick(current.BatchID(), take)
		if err != nil {
			return nil, err
		}
		out = append(out, pick)

		q.used += take
		if q.used == current.Qty() {
			q.idx++
			q.used = 0
		}
		qty -= take
	}
	return out, nil
}
