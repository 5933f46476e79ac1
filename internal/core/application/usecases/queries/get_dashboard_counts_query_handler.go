package queries

import (
	"context"

	"amsral/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardCountsQueryHandler reads the dashboard counters in one query.
type GetDashboardCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardCountsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardCountsQueryHandler(db *gorm.DB) GetDashboardCountsQueryHandler {
	return GetDashboardCountsQueryHandler{db: db}
}

// Handle executes the query and returns the current counters.
func (h GetDashboardCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardCountsQuery,
) (GetDashboardCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardCountsQueryResponse{}, err
	}

	var counts GetDashboardCountsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM customers WHERE active)
	`, order.Pending, order.Processing, order.Completed, order.Delivered).Row()

	if err := row.Scan(
		&counts.PendingOrders,
		&counts.ProcessingOrders,
		&counts.CompletedOrders,
		&counts.DeliveredOrders,
		&counts.ActiveCustomers,
	); err != nil {
		return GetDashboardCountsQueryResponse{}, err
	}

	return counts, nil
}
