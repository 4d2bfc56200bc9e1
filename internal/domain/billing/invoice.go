package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceLine represents a single billed position on an invoice.
// Amount is always derived from Price and Quantity, never taken
// from the caller.
type InvoiceLine struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Amount      decimal.Decimal
	UserID      uuid.UUID
	RecordDate  time.Time
}

// NewInvoiceLine creates a new invoice line with the amount computed.
// The user and record date are stamped when the line is attached to an
// invoice.
func NewInvoiceLine(description string, quantity, price decimal.Decimal) (*InvoiceLine, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_LINE_DESCRIPTION", "Line description is required")
	}
	if len(description) > 500 {
		return nil, shared.NewDomainError("INVALID_LINE_DESCRIPTION", "Line description cannot exceed 500 characters")
	}
	if !quantity.IsInteger() || quantity.LessThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a whole number of at least 1")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &InvoiceLine{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Amount:      price.Mul(quantity),
	}, nil
}

// Invoice is the aggregate root for billing documents. Lines are owned
// by the invoice and replaced as a whole on update. TotalAmount is the
// sum of Price*Quantity over all lines and is recomputed on every
// mutation of the line set.
type Invoice struct {
	shared.BaseAggregateRoot
	Description string
	InvoiceDate time.Time
	RecordDate  time.Time
	TotalAmount decimal.Decimal
	CustomerID  *uuid.UUID
	UserID      uuid.UUID
	Lines       []InvoiceLine

	// Customer is populated by the repository when the invoice is read
	// with its customer loaded. It is nil for unassigned invoices.
	Customer *Customer
}

// NewInvoice creates a new invoice owned by the given user. The record
// date is stamped with the current server time.
func NewInvoice(userID uuid.UUID, description string, invoiceDate time.Time, customerID *uuid.UUID, lines []InvoiceLine) (*Invoice, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invoice owner cannot be empty")
	}
	if err := validateInvoiceDescription(description); err != nil {
		return nil, err
	}
	if invoiceDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date is required")
	}

	invoice := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Description:       strings.TrimSpace(description),
		InvoiceDate:       invoiceDate,
		RecordDate:        time.Now(),
		TotalAmount:       decimal.Zero,
		UserID:            userID,
	}
	invoice.SetCustomer(customerID)
	invoice.ReplaceLines(lines)

	return invoice, nil
}

// SetCustomer assigns the invoice to a customer. A nil or zero-valued
// reference leaves the invoice unassigned.
func (i *Invoice) SetCustomer(customerID *uuid.UUID) {
	if customerID == nil || *customerID == uuid.Nil {
		i.CustomerID = nil
		return
	}

	id := *customerID
	i.CustomerID = &id
}

// ReplaceLines swaps the full line set and recomputes the total. Every
// line is stamped with the invoice's identity, owner and record date.
func (i *Invoice) ReplaceLines(lines []InvoiceLine) {
	i.Lines = make([]InvoiceLine, 0, len(lines))
	for _, line := range lines {
		line.InvoiceID = i.ID
		line.UserID = i.UserID
		line.RecordDate = i.RecordDate
		i.Lines = append(i.Lines, line)
	}
	i.recalculateTotal()
}

// UpdateDetails overwrites the invoice header fields
func (i *Invoice) UpdateDetails(description string, invoiceDate time.Time, customerID *uuid.UUID) error {
	if err := validateInvoiceDescription(description); err != nil {
		return err
	}
	if invoiceDate.IsZero() {
		return shared.NewDomainError("INVALID_INVOICE_DATE", "Invoice date is required")
	}

	i.Description = strings.TrimSpace(description)
	i.InvoiceDate = invoiceDate
	i.SetCustomer(customerID)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// StampRecord marks the invoice and all lines as recorded by the given
// user at the current time. Called by the application layer on save.
func (i *Invoice) StampRecord(userID uuid.UUID) {
	i.UserID = userID
	i.RecordDate = time.Now()
	for idx := range i.Lines {
		i.Lines[idx].UserID = i.UserID
		i.Lines[idx].RecordDate = i.RecordDate
	}
}

func validateInvoiceDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Invoice description is required")
	}
	if len(trimmed) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Invoice description cannot exceed 500 characters")
	}
	return nil
}

func (i *Invoice) recalculateTotal() {
	total := decimal.Zero
	for idx := range i.Lines {
		line := &i.Lines[idx]
		line.Amount = line.Price.Mul(line.Quantity)
		total = total.Add(line.Amount)
	}
	i.TotalAmount = total
}
