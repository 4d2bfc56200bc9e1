package billing

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll returns all customers ordered by title
	FindAll(ctx context.Context) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer without touching its invoices
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWithInvoices removes a customer together with all of its
	// invoices and their lines in a single transaction
	DeleteWithInvoices(ctx context.Context, id uuid.UUID) error
}
