package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	customerRepo billing.CustomerRepository
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo billing.InvoiceRepository,
	customerRepo billing.CustomerRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListByDateRange returns invoices whose invoice date falls within the
// inclusive range, with lines and customer loaded
func (s *InvoiceService) ListByDateRange(ctx context.Context, start, end time.Time) ([]InvoiceResponse, error) {
	if start.After(end) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Start date must not be after end date")
	}

	invoices, err := s.invoiceRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponses(invoices), nil
}

// Create creates a new invoice for the given user. The total amount and
// line amounts are computed server-side; the record date is stamped.
func (s *InvoiceService) Create(ctx context.Context, userID uuid.UUID, req SaveInvoiceRequest) (*InvoiceResponse, error) {
	customerID, err := s.resolveCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}

	invoice, err := billing.NewInvoice(userID, req.Description, req.InvoiceDate, customerID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total_amount", invoice.TotalAmount.String()))

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Update overwrites an invoice. The stored lines are replaced wholesale
// by the submitted set and the total is recomputed. The invoice is
// re-stamped with the calling user and the current time.
func (s *InvoiceService) Update(ctx context.Context, userID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := s.resolveCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := invoice.UpdateDetails(req.Description, req.InvoiceDate, customerID); err != nil {
		return nil, err
	}

	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}
	invoice.ReplaceLines(lines)
	invoice.StampRecord(userID)

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Delete removes an invoice and its lines
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// resolveCustomer normalizes the customer reference and verifies that a
// referenced customer exists. Absent and zero-valued references resolve
// to nil, leaving the invoice unassigned.
func (s *InvoiceService) resolveCustomer(ctx context.Context, customerID *uuid.UUID) (*uuid.UUID, error) {
	if customerID == nil || *customerID == uuid.Nil {
		return nil, nil
	}

	if _, err := s.customerRepo.FindByID(ctx, *customerID); err != nil {
		return nil, err
	}
	return customerID, nil
}

func buildLines(requests []InvoiceLineRequest) ([]billing.InvoiceLine, error) {
	lines := make([]billing.InvoiceLine, 0, len(requests))
	for _, lr := range requests {
		line, err := billing.NewInvoiceLine(lr.Description, lr.Quantity, lr.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}
	return lines, nil
}
