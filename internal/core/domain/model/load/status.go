package load

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery run.
//
// State transitions:
//
//	Planned ──> Loading ──> InTransit ──> Completed
//	   ▲           │            │
//	   │           ▼            │
//	   └─────── (dispatch) <────┘
//	              (recall)
//
// Planned and Loading are both dispatchable: Loading merely records that
// orders have been placed on the run. Recall returns an InTransit run to
// Planned. Completed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planned is the initial status of a newly created run.
	Planned

	// Loading indicates orders have been placed on the run.
	Loading

	// InTransit indicates the run has been dispatched.
	InTransit

	// Completed indicates the run finished its round. Final.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planned:   "Planned",
		Loading:   "Loading",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Planned && s != Loading && s != InTransit && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the run has been dispatched or completed.
// Active runs cannot be deleted or restructured.
func (s Status) IsActive() bool {
	return s == InTransit || s == Completed
}

// Dispatch transitions the status to InTransit.
//
// Valid transitions:
//   - Planned -> InTransit
//   - Loading -> InTransit
func (s Status) Dispatch() (Status, error) {
	if s != Planned && s != Loading {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return InTransit, nil
}

// Recall transitions the status from InTransit back to Planned.
func (s Status) Recall() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to recall", s.String()),
		)
	}

	return Planned, nil
}

// Complete transitions the status from InTransit to Completed.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
