package billing

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// Customer represents a billed party. It is the aggregate root for
// customer master data. UserID and RecordDate identify who created the
// record and when; updates never touch them.
type Customer struct {
	shared.BaseAggregateRoot
	Title      string
	TaxNumber  string
	Address    string
	Email      string
	UserID     uuid.UUID
	RecordDate time.Time
}

// NewCustomer creates a new customer with required fields
func NewCustomer(title, taxNumber, address, email string) (*Customer, error) {
	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}

	if err := customer.apply(title, taxNumber, address, email); err != nil {
		return nil, err
	}

	return customer, nil
}

// StampRecord marks the customer as recorded by the given user at the
// current time. Called by the application layer on create, never on
// update.
func (c *Customer) StampRecord(userID uuid.UUID) {
	c.UserID = userID
	c.RecordDate = time.Now()
}

// Update overwrites the customer's mutable fields
func (c *Customer) Update(title, taxNumber, address, email string) error {
	if err := c.apply(title, taxNumber, address, email); err != nil {
		return err
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func (c *Customer) apply(title, taxNumber, address, email string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Customer title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Customer title cannot exceed 200 characters")
	}
	if len(taxNumber) > 50 {
		return shared.NewDomainError("INVALID_TAX_NUMBER", "Tax number cannot exceed 50 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	email = strings.TrimSpace(email)
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(email)
	}

	c.Title = title
	c.TaxNumber = strings.TrimSpace(taxNumber)
	c.Address = strings.TrimSpace(address)
	c.Email = email

	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	// Basic email validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}
