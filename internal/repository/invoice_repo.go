package repository

import (
	"errors"
	"time"

	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List() ([]models.InvoiceSummary, error) {
	var invoices []models.InvoiceSummary
	err := r.db.Model(&models.Invoice{}).
		Select("id, comp_code").
		Order("id").
		Find(&invoices).Error
	return invoices, err
}

// GetByID fetches the invoice and resolves its parent company in the same
// transaction. A missing company leaves the embedded company nil rather
// than failing; under intact foreign keys that branch is unreachable.
func (r *InvoiceRepository) GetByID(id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&invoice, "id = ?", id).Error; err != nil {
			return err
		}
		var company models.Company
		if err := tx.First(&company, "code = ?", invoice.CompCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		invoice.Company = &company
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts a new unpaid invoice. The company reference is not
// pre-checked; the store's foreign key rejects unknown codes.
func (r *InvoiceRepository) Create(compCode string, amt float64) (*models.Invoice, error) {
	invoice := &models.Invoice{CompCode: compCode, Amt: amt, Paid: false}
	if err := r.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update replaces amt and paid. paidDate is written as given: callers stamp
// it on paid=true and pass nil on paid=false, which clears any prior value.
func (r *InvoiceRepository) Update(id int64, amt float64, paid bool, paidDate *time.Time) (*models.Invoice, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"amt": amt, "paid": paid, "paid_date": paidDate})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var invoice models.Invoice
	if err := r.db.First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Delete(id int64) error {
	res := r.db.Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
