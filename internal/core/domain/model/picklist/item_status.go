package picklist

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ItemStatus represents the fulfillment state of a single pick item.
//
// State transitions:
//
//	ItemPending ──┬──> ItemPicked   (pickedQty reaches targetQty)
//	              └──> ItemShort    (explicit worker confirmation)
//
//	ItemPicked / ItemShort ──> ItemPending  (reopen, allocations released)
//
// ItemPicked is reached only by allocation; ItemShort is an explicit terminal
// override entered by a worker when the remaining stock is known to be
// unavailable. Both are left again only through an explicit reopen that
// releases the item's allocations first.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined item status.
	ItemUnknown ItemStatus = iota

	// ItemPending indicates the item still needs quantity picked.
	ItemPending

	// ItemPicked indicates the picked quantity has reached the target.
	ItemPicked

	// ItemShort indicates a worker confirmed the remaining quantity cannot
	// be fulfilled.
	ItemShort
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown: "Unknown",
		ItemPending: "Pending",
		ItemPicked:  "Picked",
		ItemShort:   "Short",
	}
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if s != ItemPending && s != ItemPicked && s != ItemShort {
		return errs.NewValueIsInvalidErrorWithCause("itemStatus is invalid",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the human-readable name of the item status.
// Implements the fmt.Stringer interface.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the item no longer blocks pick list completion.
func (s ItemStatus) IsSettled() bool {
	return s == ItemPicked || s == ItemShort
}
