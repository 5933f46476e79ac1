package services

import (
	"errors"
	"strconv"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"
	"amsral/internal/pkg/errs"
)

// ErrTrackingNumbersExhausted is returned when every suffix letter A-Z is
// already taken for an order. The 26-record ceiling per order is a deliberate
// design limit, not a transient failure: callers must treat it as permanent
// for that order and surface it to the operator rather than retry.
var ErrTrackingNumbersExhausted = errors.New("all tracking numbers A-Z are in use for this order")

// TrackingAllocator is a domain service responsible for computing the next
// unused tracking number for an order's production records.
//
// Key responsibilities:
//   - Allocating the alphabetically earliest free suffix letter
//   - Listing the tracking numbers already used by an order
//   - Checking whether a specific tracking number is taken
//
// Business rules:
//   - Tracking numbers are unique within the scope of a single order
//   - Allocation fills gaps: if A and C are used, the next result is B
//   - Records of other orders never influence allocation, including
//     digit-prefix collisions (order 6 is not blocked by order 60's "60A")
//   - At most 26 records per order; the 27th allocation fails
//
// All operations are pure functions over the caller-supplied record
// snapshot: no I/O, no mutation, no internal state. Correctness of "next
// unused letter" therefore depends on the caller supplying an up-to-date
// snapshot; the allocate-and-persist race against concurrent intake is
// resolved by the storage layer's uniqueness constraint and the calling
// workflow's single retry.
//
// Example usage:
//
//	allocator := NewTrackingAllocator()
//	trackingNumber, err := allocator.AllocateNext(order.ID(), order.Records())
//	if errors.Is(err, ErrTrackingNumbersExhausted) {
//	    // Order is at its 26-record limit
//	    return
//	}
type TrackingAllocator struct{}

// NewTrackingAllocator creates a new TrackingAllocator instance.
func NewTrackingAllocator() TrackingAllocator {
	return TrackingAllocator{}
}

// AllocateNext computes the next unused tracking number for an order.
//
// Parameters:
//   - orderID: The order's positive integer id
//   - records: Snapshot of existing records; may be empty, contain records
//     without tracking numbers, and contain records of other orders
//
// Returns:
//   - kernel.TrackingNumber: The order id paired with the alphabetically
//     earliest unused suffix letter
//   - error: ErrTrackingNumbersExhausted when all 26 letters are taken, or
//     a validation error for a non-positive order id
//
// The result is guaranteed not to equal any tracking number already present
// in the snapshot for this order, and repeated calls over the same snapshot
// return the same value.
func (a TrackingAllocator) AllocateNext(orderID int64, records []*order.Record) (kernel.TrackingNumber, error) {
	used, err := usedSuffixes(orderID, records)
	if err != nil {
		return kernel.TrackingNumber{}, err
	}

	for letter := kernel.TrackingSuffixMin; letter <= kernel.TrackingSuffixMax; letter++ {
		if used[letter] {
			continue
		}
		return kernel.NewTrackingNumber(orderID, letter)
	}

	return kernel.TrackingNumber{}, ErrTrackingNumbersExhausted
}

// ListForOrder returns the tracking number strings belonging to an order,
// in the snapshot's order. No deduplication is performed: each tracking
// number is expected unique by construction, but the function does not
// enforce or assume it.
func (a TrackingAllocator) ListForOrder(orderID int64, records []*order.Record) []string {
	prefix := strconv.FormatInt(orderID, 10)

	result := make([]string, 0, len(records))
	for _, record := range records {
		if s, ok := trackingString(record); ok && belongsToOrder(s, prefix) {
			result = append(result, s)
		}
	}
	return result
}

// IsInUse reports whether any record in the snapshot carries exactly the
// given tracking number. Equality is exact string match: no normalization,
// no case-folding, matching the canonical form produced by AllocateNext.
func (a TrackingAllocator) IsInUse(trackingNumber string, records []*order.Record) bool {
	for _, record := range records {
		if s, ok := trackingString(record); ok && s == trackingNumber {
			return true
		}
	}
	return false
}

// usedSuffixes collects the suffix letters already taken by the order.
func usedSuffixes(orderID int64, records []*order.Record) (map[byte]bool, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("orderID")
	}

	prefix := strconv.FormatInt(orderID, 10)

	used := make(map[byte]bool)
	for _, record := range records {
		if s, ok := trackingString(record); ok && belongsToOrder(s, prefix) {
			used[s[len(s)-1]] = true
		}
	}
	return used, nil
}

// belongsToOrder reports whether the tracking string s is owned by the order
// with the given decimal digit prefix. The remainder after the prefix must
// be exactly one uppercase letter: a plain prefix match would wrongly claim
// order 60's "60A" for order 6, since the remainder "0A" is two characters.
func belongsToOrder(s string, prefix string) bool {
	if len(s) != len(prefix)+1 || s[:len(prefix)] != prefix {
		return false
	}

	suffix := s[len(s)-1]
	return suffix >= kernel.TrackingSuffixMin && suffix <= kernel.TrackingSuffixMax
}

// trackingString extracts a record's tracking number string, if any.
func trackingString(record *order.Record) (string, bool) {
	if record == nil {
		return "", false
	}
	tn := record.TrackingNumber()
	if tn == nil {
		return "", false
	}
	return tn.String(), true
}
