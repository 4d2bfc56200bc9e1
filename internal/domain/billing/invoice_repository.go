package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence.
// Read operations that return invoices always load the full aggregate:
// lines and, when assigned, the customer.
type InvoiceRepository interface {
	// FindByID finds an invoice with its lines by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByDateRange returns invoices whose invoice date falls within
	// the inclusive range, ordered by creation time
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Invoice, error)

	// Save creates or updates an invoice. On update the stored line set
	// is replaced by the aggregate's lines in a single transaction.
	Save(ctx context.Context, invoice *Invoice) error

	// Delete removes an invoice and its lines in a single transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCustomer returns the number of invoices assigned to a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}
