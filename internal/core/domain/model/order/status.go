package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of a sales order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct dispatch workflow.
//
// State transitions:
//
//	Picking ──> Ready ──> Dispatched
//	   ▲          │ ▲         │
//	   └──────────┘ └─────────┘
//	    (reopen)      (recall)
//
// A recall returns the status to whatever state the order held before it was
// dispatched: Ready for a normal dispatch, Picking for an order that was
// force-dispatched mid-pick.
//
// Ready is the single canonical "can be dispatched" state. Legacy systems
// used several synonym strings for it (ready, ready_for_dispatch, packed);
// those are collapsed to Ready at the presentation boundary and never reach
// this state machine.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Picking is the initial status while the order's pick list is being
	// gathered.
	Picking

	// Ready indicates the pick list has been completed and the order can be
	// placed on a delivery run and dispatched.
	Ready

	// Dispatched indicates the order has left on a delivery run.
	// Recalling the run returns the order to its pre-dispatch state.
	Dispatched
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Picking:    "Picking",
		Ready:      "Ready",
		Dispatched: "Dispatched",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Picking:    "Picking",
		Ready:      "Ready",
		Dispatched: "Dispatched",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Picking, Ready, Dispatched.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsReady reports whether the status permits dispatch.
func (s Status) IsReady() bool {
	return s == Ready
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - Picking -> Ready (pick list completed)
//   - Ready -> Ready (repeated completion, idempotent)
//
// Invalid transitions:
//   - Dispatched -> Ready (use Recall)
//   - Unknown -> Ready
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) MarkReady() (Status, error) {
	if s != Picking && s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}

	return Ready, nil
}

// Reopen transitions the status back to Picking so the pick list can be
// corrected.
//
// Valid transitions:
//   - Ready -> Picking
//
// Invalid transitions:
//   - Picking -> Picking (nothing to reopen)
//   - Dispatched -> Picking (recall the run first)
func (s Status) Reopen() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return Picking, nil
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Ready -> Dispatched
//
// Invalid transitions:
//   - Picking -> Dispatched (the pick list is not finished)
//   - Dispatched -> Dispatched (already on a run)
func (s Status) Dispatch() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return Dispatched, nil
}

// ForceDispatch transitions the status to Dispatched even when the pick
// list is not finished. Used when a dispatcher overrides readiness checks;
// the override reason is recorded on the delivery run.
//
// Valid transitions:
//   - Picking -> Dispatched
//   - Ready -> Dispatched
func (s Status) ForceDispatch() (Status, error) {
	if s != Picking && s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to force dispatch", s.String()),
		)
	}

	return Dispatched, nil
}

// Recall reverses a dispatch, returning the status to the state the order
// held before it left. resumeAt is that recorded pre-dispatch state; Unknown
// falls back to Ready for orders persisted before the state was recorded.
//
// Valid transitions:
//   - Dispatched -> Ready (resumeAt Ready or Unknown)
//   - Dispatched -> Picking (resumeAt Picking, a forced dispatch mid-pick)
func (s Status) Recall(resumeAt Status) (Status, error) {
	if s != Dispatched {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to recall", s.String()),
		)
	}

	switch resumeAt {
	case Picking, Ready:
		return resumeAt, nil
	case Unknown:
		return Ready, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"resumeAt",
			fmt.Errorf("%s is not a valid pre-dispatch status", resumeAt.String()),
		)
	}
}
