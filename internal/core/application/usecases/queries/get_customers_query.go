// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read straight from the
// database for optimal performance.
package queries

import (
	"errors"

	"amsral/internal/core/domain/model/kernel"
	"amsral/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be greater than 0")
	ErrPageSizeIsInvalid = errors.New("page size must be between 1 and 500")
)

const maxPageSize = 500

// GetCustomersQuery retrieves a page of customers, optionally filtered by a
// case-insensitive name fragment.
//
// Example:
//
//	query, _ := NewGetCustomersQuery("hotel", 1, 50)
//	handler := NewGetCustomersQueryHandler(db)
//
//	customers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list customers: %w", err)
//	}
type GetCustomersQuery struct {
	nameFilter string
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query for a customer listing page.
// Pages are 1-based; the name filter may be empty.
func NewGetCustomersQuery(nameFilter string, page, pageSize int) (GetCustomersQuery, error) {
	if page <= 0 {
		return GetCustomersQuery{}, ErrPageIsInvalid
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		return GetCustomersQuery{}, ErrPageSizeIsInvalid
	}

	return GetCustomersQuery{
		nameFilter: nameFilter,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// NameFilter returns the optional name fragment.
func (q GetCustomersQuery) NameFilter() string {
	return q.nameFilter
}

// Page returns the 1-based page number.
func (q GetCustomersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetCustomersQuery) PageSize() int {
	return q.pageSize
}

// GetCustomersQueryResponse represents one customer row of the listing.
type GetCustomersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Address string
	Active  bool
}
