package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	TaxNumber string `json:"tax_number" binding:"max=50"`
	Address   string `json:"address" binding:"max=500"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateCustomerRequest represents a request to overwrite a customer's
// mutable fields. Omitted fields are cleared, matching the overwrite
// semantics of the API.
type UpdateCustomerRequest struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	Title     string    `json:"title" binding:"required,min=1,max=200"`
	TaxNumber string    `json:"tax_number" binding:"max=50"`
	Address   string    `json:"address" binding:"max=500"`
	Email     string    `json:"email" binding:"omitempty,email,max=200"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TaxNumber  string    `json:"tax_number"`
	Address    string    `json:"address"`
	Email      string    `json:"email"`
	UserID     uuid.UUID `json:"user_id"`
	RecordDate time.Time `json:"record_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer to a response DTO
func ToCustomerResponse(c *billing.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Title:      c.Title,
		TaxNumber:  c.TaxNumber,
		Address:    c.Address,
		Email:      c.Email,
		UserID:     c.UserID,
		RecordDate: c.RecordDate,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// InvoiceLineRequest represents one line of an invoice save request.
// Amounts are never taken from the caller; they are recomputed from
// price and quantity.
type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// SaveInvoiceRequest represents a request to create an invoice
type SaveInvoiceRequest struct {
	Description string               `json:"description" binding:"required,max=500"`
	InvoiceDate time.Time            `json:"invoice_date" binding:"required"`
	CustomerID  *uuid.UUID           `json:"customer_id"`
	Lines       []InvoiceLineRequest `json:"lines" binding:"dive"`
}

// UpdateInvoiceRequest represents a request to update an invoice. The
// submitted lines replace the stored line set wholesale.
type UpdateInvoiceRequest struct {
	ID          uuid.UUID            `json:"id" binding:"required"`
	Description string               `json:"description" binding:"required,max=500"`
	InvoiceDate time.Time            `json:"invoice_date" binding:"required"`
	CustomerID  *uuid.UUID           `json:"customer_id"`
	Lines       []InvoiceLineRequest `json:"lines" binding:"dive"`
}

// InvoiceLineResponse represents an invoice line in API responses
type InvoiceLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
	UserID      uuid.UUID       `json:"user_id"`
	RecordDate  time.Time       `json:"record_date"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID          uuid.UUID             `json:"id"`
	Description string                `json:"description"`
	InvoiceDate time.Time             `json:"invoice_date"`
	RecordDate  time.Time             `json:"record_date"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	CustomerID  *uuid.UUID            `json:"customer_id"`
	Customer    *CustomerResponse     `json:"customer,omitempty"`
	UserID      uuid.UUID             `json:"user_id"`
	Lines       []InvoiceLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ToInvoiceResponse converts a domain Invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          inv.ID,
		Description: inv.Description,
		InvoiceDate: inv.InvoiceDate,
		RecordDate:  inv.RecordDate,
		TotalAmount: inv.TotalAmount,
		CustomerID:  inv.CustomerID,
		UserID:      inv.UserID,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}

	resp.Lines = make([]InvoiceLineResponse, len(inv.Lines))
	for i, line := range inv.Lines {
		resp.Lines[i] = InvoiceLineResponse{
			ID:          line.ID,
			Description: line.Description,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Amount:      line.Amount,
			UserID:      line.UserID,
			RecordDate:  line.RecordDate,
		}
	}

	if inv.Customer != nil {
		customer := ToCustomerResponse(inv.Customer)
		resp.Customer = &customer
	}

	return resp
}

// ToInvoiceResponses converts a slice of domain Invoices to response DTOs
func ToInvoiceResponses(invoices []billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
