package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// compile-time interface check
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by ID with its lines and customer loaded
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByDateRange returns invoices whose invoice date falls within the
// inclusive range, with lines and customer loaded, ordered by creation time
func (r *GormInvoiceRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]billing.Invoice, error) {
	var modelList []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Customer").
		Where("invoice_date >= ? AND invoice_date <= ?", start, end).
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, err
	}

	invoices := make([]billing.Invoice, len(modelList))
	for i := range modelList {
		invoices[i] = *modelList[i].ToDomain()
	}
	return invoices, nil
}

// Save creates or updates an invoice. The stored line set is replaced by
// the aggregate's lines inside one transaction.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines", "Customer").Save(&model).Error; err != nil {
			return err
		}

		// Replace lines wholesale
		if err := tx.Where("invoice_id = ?", model.ID).
			Delete(&models.InvoiceLineModel{}).Error; err != nil {
			return err
		}

		if len(model.Lines) > 0 {
			if err := tx.Create(&model.Lines).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes an invoice and its lines in one transaction
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).
			Delete(&models.InvoiceLineModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountByCustomer returns the number of invoices assigned to a customer
func (r *GormInvoiceRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
