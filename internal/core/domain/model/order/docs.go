// Package order provides domain entities and business logic for order management
// in the laundry system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, records, and lifecycle
//   - Record: A production sub-record moving through washing, completion and delivery
//   - Status / RecordStatus: State machines that enforce valid workflow transitions
//   - WashType: The supported wash programs
//
// Key business rules:
//   - Orders must reference a valid customer and carry an intake note
//   - Order status follows the production workflow:
//     Pending -> Processing -> Completed -> Delivered -> Invoiced
//   - Every record carries a tracking number unique within its order
//   - Records can only be added while the order is Pending or Processing
//   - Delivered quantities never exceed batch quantities; the return
//     quantity is derived from the difference
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
