package ports

import (
	"context"

	"amsral/internal/core/domain/model/billing"
	"amsral/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// Add persists a new invoice.
	Add(ctx context.Context, aggregate *billing.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *billing.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error)
}
