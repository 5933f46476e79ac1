package queries

import (
	"context"
	"database/sql"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderRecordsQueryHandler reads an order's production records from the
// database, sorted by tracking number so the wash room list matches the
// intake tickets.
type GetOrderRecordsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderRecordsQueryHandler creates a handler for record listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrderRecordsQueryHandler(db *gorm.DB) GetOrderRecordsQueryHandler {
	return GetOrderRecordsQueryHandler{db: db}
}

// Handle executes the query to retrieve the records of one order.
func (h GetOrderRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderRecordsQuery,
) ([]GetOrderRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetOrderRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			quantity,
			wash_type,
			washing_machine,
			drying_machine,
			delivered_quantity,
			quantity - delivered_quantity,
			status
		FROM order_records
		WHERE order_id = ?
		ORDER BY tracking_number
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recordResp GetOrderRecordsQueryResponse
		var id uuid.UUID
		var trackingNumber sql.NullString
		var status int

		err = rows.Scan(
			&id,
			&trackingNumber,
			&recordResp.Quantity,
			&recordResp.WashType,
			&recordResp.WashingMachine,
			&recordResp.DryingMachine,
			&recordResp.DeliveredQuantity,
			&recordResp.ReturnQuantity,
			&status,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		recordResp.ID = recordID
		recordResp.TrackingNumber = trackingNumber.String
		recordResp.Status = order.RecordStatus(status).String()
		records = append(records, recordResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
