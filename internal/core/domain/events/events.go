// Package events defines the integration events the service emits when a
// pick list or delivery run crosses a milestone other systems care about.
package events

import "time"

// PickListCompleted is emitted when a pick list is finished and its order
// becomes ready for loading.
type PickListCompleted struct {
	PickListID string    `json:"pick_list_id"`
	OrderID    string    `json:"order_id"`
	Sequence   int       `json:"sequence"`
	Trolleys   int       `json:"trolleys"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LoadDispatched is emitted when a delivery run departs.
type LoadDispatched struct {
	LoadID         string    `json:"load_id"`
	ScheduledDate  time.Time `json:"scheduled_date"`
	Carrier        string    `json:"carrier"`
	OrderIDs       []string  `json:"order_ids"`
	OverrideReason string    `json:"override_reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// LoadRecalled is emitted when a dispatched delivery run is called back
// and its orders return to the loading yard.
type LoadRecalled struct {
	LoadID     string    `json:"load_id"`
	OrderIDs   []string  `json:"order_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}
