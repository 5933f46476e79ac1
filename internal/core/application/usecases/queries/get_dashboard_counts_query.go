package queries

import (
	"errors"

	"amsral/internal/pkg/guard"
)

var ErrGetDashboardCountsQueryIsNotConstructed = errors.New(
	"GetDashboardCountsQuery must be created via NewGetDashboardCountsQuery constructor",
)

// GetDashboardCountsQuery retrieves the headline numbers for the dashboard:
// order counts per workflow stage plus the active customer total.
type GetDashboardCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardCountsQuery creates a query for the dashboard counters.
func NewGetDashboardCountsQuery() GetDashboardCountsQuery {
	return GetDashboardCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardCountsQueryIsNotConstructed)
}

// GetDashboardCountsQueryResponse represents the dashboard counters.
type GetDashboardCountsQueryResponse struct {
	PendingOrders    int
	ProcessingOrders int
	CompletedOrders  int
	DeliveredOrders  int
	ActiveCustomers  int
}
