package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo billing.CustomerRepository
	invoiceRepo  billing.InvoiceRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo billing.CustomerRepository,
	invoiceRepo billing.InvoiceRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		logger:       logger,
	}
}

// List returns all customers ordered by title
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Create creates a new customer owned by the given user. The record
// date is stamped server-side.
func (s *CustomerService) Create(ctx context.Context, userID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := billing.NewCustomer(req.Title, req.TaxNumber, req.Address, req.Email)
	if err != nil {
		return nil, err
	}
	customer.StampRecord(userID)

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("title", customer.Title))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update overwrites a customer's mutable fields
func (s *CustomerService) Update(ctx context.Context, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Title, req.TaxNumber, req.Address, req.Email); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Delete removes a customer. A customer that still has invoices is only
// removed when force is set; the invoices and their lines go with it in
// one transaction. Without force the call fails with a conflict carrying
// the invoice count.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID, force bool) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.invoiceRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}

	if count > 0 && !force {
		return shared.NewDomainErrorWithDetails(
			"CUSTOMER_HAS_INVOICES",
			"Customer has invoices and cannot be deleted without force",
			map[string]any{"invoiceCount": count},
		)
	}

	if count > 0 {
		if err := s.customerRepo.DeleteWithInvoices(ctx, id); err != nil {
			return err
		}
		s.logger.Info("Customer deleted with invoices",
			zap.String("customer_id", id.String()),
			zap.Int64("invoice_count", count))
		return nil
	}

	return s.customerRepo.Delete(ctx, id)
}
