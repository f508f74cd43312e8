package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) List() ([]models.Industry, error) {
	var industries []models.Industry
	err := r.db.Order("code").Find(&industries).Error
	return industries, err
}

func (r *IndustryRepository) Create(industry *models.Industry) error {
	return r.db.Create(industry).Error
}

// Associate links a company to an industry. Neither side is checked for
// existence; a dangling reference is rejected by the store's foreign keys.
func (r *IndustryRepository) Associate(compCode, indCode string) (*models.CompanyIndustry, error) {
	assoc := &models.CompanyIndustry{CompCode: compCode, IndCode: indCode}
	if err := r.db.Create(assoc).Error; err != nil {
		return nil, err
	}
	return assoc, nil
}
