package queries

import (
	"context"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncompleteOrdersQueryHandler reads open orders from the database.
// Joins customers and aggregates record counts so the workflow screen gets
// everything in one round trip.
type GetIncompleteOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetIncompleteOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetIncompleteOrdersQueryHandler(db *gorm.DB) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders before Completed status.
// Results are sorted by order id for consistent output.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetIncompleteOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.reference,
			o.status,
			COUNT(r.id),
			COALESCE(SUM(r.quantity), 0)
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN order_records r ON r.order_id = o.id
		WHERE o.status IN (?, ?)
		GROUP BY o.id, o.customer_id, c.name, o.reference, o.status
		ORDER BY o.id
	`, order.Pending, order.Processing).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetIncompleteOrdersQueryResponse
		var customerID uuid.UUID
		var status int

		err = rows.Scan(
			&orderResp.ID,
			&customerID,
			&orderResp.CustomerName,
			&orderResp.Reference,
			&status,
			&orderResp.RecordCount,
			&orderResp.Quantity,
		)
		if err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = ownerID
		orderResp.Status = order.Status(status).String()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
