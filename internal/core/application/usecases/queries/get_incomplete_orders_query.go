package queries

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
	"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
)

// GetIncompleteOrdersQuery retrieves all orders still moving through the
// production workflow: everything before Completed status.
//
// Example:
//
//	query := NewGetIncompleteOrdersQuery()
//	handler := NewGetIncompleteOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//	fmt.Printf("%d orders in the wash room\n", len(orders))
type GetIncompleteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query to retrieve open orders.
// This is a parameterless query that fetches all pending and processing orders.
func NewGetIncompleteOrdersQuery() GetIncompleteOrdersQuery {
	return GetIncompleteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetIncompleteOrdersQueryIsNotConstructed if validation fails.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// GetIncompleteOrdersQueryResponse represents one open order row.
// CustomerName comes from a join so the workflow screen needs no extra
// lookups.
type GetIncompleteOrdersQueryResponse struct {
	ID           int64
	CustomerID   kernel.UUID
	CustomerName string
	Reference    string
	Status       string
	RecordCount  int
	Quantity     int
}
