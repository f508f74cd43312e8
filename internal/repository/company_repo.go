package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List() ([]models.CompanySummary, error) {
	var companies []models.CompanySummary
	err := r.db.Model(&models.Company{}).
		Select("code, name").
		Order("code").
		Find(&companies).Error
	return companies, err
}

// GetByCode assembles the company with its invoice IDs and industry names.
// The three lookups run in one transaction so the caller sees a consistent
// view even under concurrent deletes.
func (r *CompanyRepository) GetByCode(code string) (*models.CompanyDetail, error) {
	detail := &models.CompanyDetail{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&detail.Company, "code = ?", code).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Invoice{}).
			Where("comp_code = ?", code).
			Order("id").
			Pluck("id", &detail.Invoices).Error; err != nil {
			return err
		}
		return tx.Table("industries").
			Joins("JOIN company_industries ON company_industries.ind_code = industries.code").
			Where("company_industries.comp_code = ?", code).
			Order("industries.industry").
			Pluck("industries.industry", &detail.Industries).Error
	})
	if err != nil {
		return nil, err
	}
	if detail.Invoices == nil {
		detail.Invoices = []int64{}
	}
	if detail.Industries == nil {
		detail.Industries = []string{}
	}
	return detail, nil
}

// Create inserts the company as-is. Code collisions are not pre-checked;
// the store's primary-key constraint rejects them.
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepository) Update(code, name, description string) (*models.Company, error) {
	res := r.db.Model(&models.Company{}).
		Where("code = ?", code).
		Updates(map[string]interface{}{"name": name, "description": description})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var company models.Company
	if err := r.db.First(&company, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Delete(code string) error {
	res := r.db.Delete(&models.Company{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
