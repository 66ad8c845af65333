package picklist

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a pick list.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	                ▲              │
//	                └──────────────┘
//	                   (reopen)
//
// A pick list moves to InProgress on the first worker claim or the first item
// allocation, whichever happens first. Completion is an explicit "finish"
// action and is idempotent; a completed list is immutable except through an
// explicit reopen.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: no worker has claimed the list and no
	// item has been allocated yet.
	Pending

	// InProgress indicates picking has started.
	InProgress

	// Completed indicates every item is settled (picked or short) and the
	// finish action has been recorded.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != InProgress && s != Completed {
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

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//   - InProgress -> InProgress (repeated claims are harmless)
//
// Invalid transitions:
//   - Completed -> InProgress (use Reopen)
func (s Status) Start() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed (a list whose items were all settled through
//     combined picking may never have been individually claimed)
//   - InProgress -> Completed
//   - Completed -> Completed (idempotent finish)
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Completed, nil
}

// Reopen transitions the status from Completed back to InProgress.
func (s Status) Reopen() (Status, error) {
	if s != Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return InProgress, nil
}
