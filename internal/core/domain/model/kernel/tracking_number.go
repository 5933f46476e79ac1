package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"amsral/internal/pkg/errs"
	"amsral/internal/pkg/guard"
)

const (
	// TrackingSuffixMin is the first allocatable suffix letter.
	TrackingSuffixMin byte = 'A'
	// TrackingSuffixMax is the last allocatable suffix letter.
	TrackingSuffixMax byte = 'Z'
)

var (
	// ErrTrackingNumberIsNotConstructed is returned when attempting to use an
	// improperly initialized TrackingNumber. Tracking numbers must be created
	// via NewTrackingNumber or ParseTrackingNumber.
	ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"tracking number must be created via NewTrackingNumber or ParseTrackingNumber constructors")

	// ErrInvalidTrackingNumberFormat is returned by ParseTrackingNumber when
	// the input does not match the tracking number format.
	ErrInvalidTrackingNumberFormat = errors.New("tracking number must be one or more digits followed by a single uppercase letter")
)

// trackingNumberPattern is the accepted textual form: one or more ASCII
// digits followed by exactly one uppercase ASCII letter. Leading zeros in
// the digit part are tolerated so that externally sourced or legacy values
// such as "06A" still parse, even though the allocator never produces them.
var trackingNumberPattern = regexp.MustCompile(`^[0-9]+[A-Z]$`)

// TrackingNumber identifies a single production record within an order.
// It is an immutable value object composed of the order's integer id and a
// single uppercase suffix letter; the canonical textual form concatenates
// the two with no separator, e.g. order 6 + suffix 'B' -> "6B".
//
// A tracking number is allocated once when a production record is created
// for an order and is never reassigned; uniqueness is enforced only within
// the scope of a single order.
//
// The zero value of TrackingNumber is invalid and will fail validation -
// use the constructors to create instances.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber(6, 'B')
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(tn) // Output: 6B
type TrackingNumber struct { //nolint:recvcheck //using for validation
	orderID int64
	suffix  byte
	guard   guard.ConstructorGuard
}

// NewTrackingNumber creates a TrackingNumber from an order id and a suffix letter.
// The order id must be positive and the suffix must be an uppercase ASCII
// letter in [TrackingSuffixMin..TrackingSuffixMax].
//
// Returns:
//   - TrackingNumber: A valid tracking number instance
//   - error: Validation error if the order id or suffix is out of bounds
func NewTrackingNumber(orderID int64, suffix byte) (TrackingNumber, error) {
	tn := TrackingNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(tn.setOrderID(orderID), tn.setSuffix(suffix)); err != nil {
		return TrackingNumber{}, err
	}

	return tn, nil
}

// ParseTrackingNumber parses the textual form of a tracking number.
// The input must match one-or-more digits followed by exactly one uppercase
// letter, with nothing else: no whitespace, no lowercase, no punctuation.
// Leading zeros in the digit part are accepted ("06A" parses to order 6);
// String always renders the canonical form without them.
//
// Returns an errs.ValueIsInvalidError wrapping ErrInvalidTrackingNumberFormat
// when the input is malformed. Callers that only need a yes/no answer should
// use IsValidTrackingNumber instead.
//
// Example:
//
//	tn, err := kernel.ParseTrackingNumber("6B")
//	if err != nil {
//	    return fmt.Errorf("bad tracking number: %w", err)
//	}
//	fmt.Println(tn.OrderID(), string(tn.Suffix())) // Output: 6 B
func ParseTrackingNumber(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("tracking number %q", s), ErrInvalidTrackingNumberFormat)
	}

	digits := s[:len(s)-1]
	orderID, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("tracking number %q", s), err)
	}

	return NewTrackingNumber(orderID, s[len(s)-1])
}

// IsValidTrackingNumber reports whether s is a well-formed tracking number.
// It is a total function over all strings and never returns an error:
// the empty string, pure digits ("6"), pure letters ("A"), lowercase
// suffixes ("6a") and multi-letter suffixes ("6AB") are all rejected.
func IsValidTrackingNumber(s string) bool {
	return trackingNumberPattern.MatchString(s)
}

// Validate checks if the TrackingNumber was properly constructed.
// The zero value fails this validation.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

// OrderID returns the integer order id encoded in the tracking number.
func (t TrackingNumber) OrderID() int64 {
	return t.orderID
}

// Suffix returns the single uppercase suffix letter.
func (t TrackingNumber) Suffix() byte {
	return t.suffix
}

// String returns the canonical textual form: the decimal digits of the
// order id immediately followed by the suffix letter, e.g. "6B".
// This is the form persisted wherever a tracking number is stored.
// Implements the fmt.Stringer interface.
func (t TrackingNumber) String() string {
	return strconv.FormatInt(t.orderID, 10) + string(t.suffix)
}

// IsEqual compares two tracking numbers for equality.
// Both must be properly constructed for the comparison to succeed.
func (t TrackingNumber) IsEqual(other TrackingNumber) (bool, error) {
	if err := errors.Join(t.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return t == other, nil
}

// setOrderID sets the order id with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, mirroring the self-encapsulated validation pattern used
// by the other value objects in this package.
func (t *TrackingNumber) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a positive integer", orderID))
	}

	t.orderID = orderID
	return nil
}

// setSuffix sets the suffix letter with validation.
func (t *TrackingNumber) setSuffix(suffix byte) error {
	if suffix < TrackingSuffixMin || suffix > TrackingSuffixMax {
		return errs.NewValueIsOutOfRangeError("suffix", string(suffix),
			string(TrackingSuffixMin), string(TrackingSuffixMax))
	}

	t.suffix = suffix
	return nil
}
