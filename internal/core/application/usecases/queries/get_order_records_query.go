package queries

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrGetOrderRecordsQueryIsNotConstructed = errors.New(
		"GetOrderRecordsQuery must be created via NewGetOrderRecordsQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderRecordsQuery retrieves the production records of one order,
// identified to operators by their tracking numbers.
type GetOrderRecordsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderRecordsQuery creates a query for an order's records.
func NewGetOrderRecordsQuery(orderID int64) (GetOrderRecordsQuery, error) {
	if orderID <= 0 {
		return GetOrderRecordsQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderRecordsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRecordsQueryIsNotConstructed)
}

// OrderID returns the target order's sequence number.
func (q GetOrderRecordsQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderRecordsQueryResponse represents one production record row.
// ReturnQuantity is derived in SQL: quantity minus delivered quantity.
type GetOrderRecordsQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	Quantity          int
	WashType          string
	WashingMachine    string
	DryingMachine     string
	DeliveredQuantity int
	ReturnQuantity    int
	Status            string
}
