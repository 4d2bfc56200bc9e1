package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements billing.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// compile-time interface check
var _ billing.CustomerRepository = (*GormCustomerRepository)(nil)

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all customers ordered by title
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]billing.Customer, error) {
	var modelList []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Order("title ASC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}

	customers := make([]billing.Customer, len(modelList))
	for i := range modelList {
		customers[i] = *modelList[i].ToDomain()
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *billing.Customer) error {
	var model models.CustomerModel
	model.FromDomain(customer)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a customer without touching its invoices
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteWithInvoices removes a customer together with all of its invoices
// and their lines. The whole cascade runs in one transaction so a failure
// leaves the customer and every invoice untouched.
func (r *GormCustomerRepository) DeleteWithInvoices(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceIDs := tx.Model(&models.InvoiceModel{}).
			Select("id").
			Where("customer_id = ?", id)

		if err := tx.Where("invoice_id IN (?)", invoiceIDs).
			Delete(&models.InvoiceLineModel{}).Error; err != nil {
			return err
		}

		if err := tx.Where("customer_id = ?", id).
			Delete(&models.InvoiceModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CustomerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
