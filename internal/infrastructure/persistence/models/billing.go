package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for billing.Customer
type CustomerModel struct {
	AggregateModel
	Title      string    `gorm:"type:varchar(200);not null;index"`
	TaxNumber  string    `gorm:"type:varchar(50)"`
	Address    string    `gorm:"type:varchar(500)"`
	Email      string    `gorm:"type:varchar(200)"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RecordDate time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity
func (m *CustomerModel) ToDomain() *billing.Customer {
	return &billing.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		TaxNumber:         m.TaxNumber,
		Address:           m.Address,
		Email:             m.Email,
		UserID:            m.UserID,
		RecordDate:        m.RecordDate,
	}
}

// FromDomain populates the persistence model from a domain Customer entity
func (m *CustomerModel) FromDomain(customer *billing.Customer) {
	m.FromDomainAggregateRoot(customer.BaseAggregateRoot)
	m.Title = customer.Title
	m.TaxNumber = customer.TaxNumber
	m.Address = customer.Address
	m.Email = customer.Email
	m.UserID = customer.UserID
	m.RecordDate = customer.RecordDate
}

// InvoiceModel is the persistence model for the Invoice aggregate root.
// Lines are owned by the invoice and written together with it.
type InvoiceModel struct {
	AggregateModel
	Description string             `gorm:"type:varchar(500)"`
	InvoiceDate time.Time          `gorm:"not null;index"`
	RecordDate  time.Time          `gorm:"not null"`
	TotalAmount decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	CustomerID  *uuid.UUID         `gorm:"type:uuid;index"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	Customer    *CustomerModel     `gorm:"foreignKey:CustomerID;references:ID"`
	Lines       []InvoiceLineModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	invoice := &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Description:       m.Description,
		InvoiceDate:       m.InvoiceDate,
		RecordDate:        m.RecordDate,
		TotalAmount:       m.TotalAmount,
		CustomerID:        m.CustomerID,
		UserID:            m.UserID,
	}

	invoice.Lines = make([]billing.InvoiceLine, len(m.Lines))
	for i := range m.Lines {
		invoice.Lines[i] = *m.Lines[i].ToDomain()
	}

	if m.Customer != nil {
		invoice.Customer = m.Customer.ToDomain()
	}

	return invoice
}

// FromDomain populates the persistence model from a domain Invoice entity
func (m *InvoiceModel) FromDomain(invoice *billing.Invoice) {
	m.FromDomainAggregateRoot(invoice.BaseAggregateRoot)
	m.Description = invoice.Description
	m.InvoiceDate = invoice.InvoiceDate
	m.RecordDate = invoice.RecordDate
	m.TotalAmount = invoice.TotalAmount
	m.CustomerID = invoice.CustomerID
	m.UserID = invoice.UserID

	m.Lines = make([]InvoiceLineModel, len(invoice.Lines))
	for i := range invoice.Lines {
		m.Lines[i].FromDomain(&invoice.Lines[i])
	}
}

// InvoiceLineModel is the persistence model for billing.InvoiceLine
type InvoiceLineModel struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecordDate  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToDomain converts the persistence model to a domain InvoiceLine entity
func (m *InvoiceLineModel) ToDomain() *billing.InvoiceLine {
	return &billing.InvoiceLine{
		BaseEntity:  m.BaseModel.ToDomain(),
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Price:       m.Price,
		Amount:      m.Amount,
		UserID:      m.UserID,
		RecordDate:  m.RecordDate,
	}
}

// FromDomain populates the persistence model from a domain InvoiceLine entity
func (m *InvoiceLineModel) FromDomain(line *billing.InvoiceLine) {
	m.FromDomainBaseEntity(line.BaseEntity)
	m.InvoiceID = line.InvoiceID
	m.Description = line.Description
	m.Quantity = line.Quantity
	m.Price = line.Price
	m.Amount = line.Amount
	m.UserID = line.UserID
	m.RecordDate = line.RecordDate
}
