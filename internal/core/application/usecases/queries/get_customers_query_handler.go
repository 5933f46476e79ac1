package queries

import (
	"context"

	"amsral/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler reads customer listing pages from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query and returns one page of customers sorted by name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetCustomersQueryResponse, 0)
	offset := (query.Page() - 1) * query.PageSize()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			address,
			active
		FROM customers
		WHERE name ILIKE '%' || ? || '%'
		ORDER BY name
		LIMIT ? OFFSET ?
	`, query.NameFilter(), query.PageSize(), offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customerResp GetCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&customerResp.Name,
			&customerResp.Phone,
			&customerResp.Address,
			&customerResp.Active,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerResp.ID = customerID
		customers = append(customers, customerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
