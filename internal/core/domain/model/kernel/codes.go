package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

const (
	// locationCodeMaxLen bounds the length of a stock location code.
	locationCodeMaxLen = 32
	// sizeCodeMaxLen bounds the length of a pot/tray size code.
	sizeCodeMaxLen = 16
)

// LocationCode identifies a physical stock location in the nursery, such as a
// tunnel, bed or holding area ("TUNNEL-3", "BED-A12"). It is an immutable
// value object; the zero value is invalid and must be created through
// NewLocationCode.
//
// Example:
//
//	loc, err := kernel.NewLocationCode("tunnel-3")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc.String()) // Output: TUNNEL-3
type LocationCode struct {
	code string
}

// NewLocationCode creates a LocationCode from a raw string.
// The code is trimmed and uppercased so that "tunnel-3" and "TUNNEL-3 " name
// the same location. Returns an error when the code is empty or longer than
// the permitted maximum.
func NewLocationCode(code string) (LocationCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return LocationCode{}, errs.NewValueIsRequiredError("locationCode")
	}
	if len(code) > locationCodeMaxLen {
		return LocationCode{}, errs.NewValueIsOutOfRangeError("locationCode length", len(code), 1, locationCodeMaxLen)
	}

	return LocationCode{code: code}, nil
}

// String returns the normalized location code.
func (l LocationCode) String() string {
	return l.code
}

// IsEqual compares two location codes for equality.
func (l LocationCode) IsEqual(other LocationCode) bool {
	return l.code == other.code
}

// Validate checks that the LocationCode was created through NewLocationCode.
// The zero value fails validation.
func (l LocationCode) Validate() error {
	if l.code == "" {
		return errs.NewValueIsRequiredError("locationCode must be created via NewLocationCode")
	}
	return nil
}

// SizeCode identifies a pot or tray size descriptor ("P9", "C2", "TRAY104").
// It is an immutable value object; the zero value is invalid and must be
// created through NewSizeCode.
type SizeCode struct {
	code string
}

// NewSizeCode creates a SizeCode from a raw string.
// The code is trimmed and uppercased. Returns an error when the code is empty
// or longer than the permitted maximum.
func NewSizeCode(code string) (SizeCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return SizeCode{}, errs.NewValueIsRequiredError("sizeCode")
	}
	if len(code) > sizeCodeMaxLen {
		return SizeCode{}, errs.NewValueIsOutOfRangeError("sizeCode length", len(code), 1, sizeCodeMaxLen)
	}

	return SizeCode{code: code}, nil
}

// String returns the normalized size code.
func (s SizeCode) String() string {
	return s.code
}

// IsEqual compares two size codes for equality.
func (s SizeCode) IsEqual(other SizeCode) bool {
	return s.code == other.code
}

// Validate checks that the SizeCode was created through NewSizeCode.
// The zero value fails validation.
func (s SizeCode) Validate() error {
	if s.code == "" {
		return errs.NewValueIsRequiredError("sizeCode must be created via NewSizeCode")
	}
	return nil
}
