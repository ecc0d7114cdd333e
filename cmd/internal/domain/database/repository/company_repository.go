package repository

import (
	"errors"
	"gorm.io/gorm"
	"zscore/cmd/internal/domain/entity"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindByID(id int64) (*entity.Company, error) {
	var company entity.Company
	err := r.db.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) FindByNumberAndCountry(number, countryCode string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Where("company_number = ? AND country_code = ?", number, countryCode).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) FindAll(offset, limit int) ([]*entity.Company, error) {
	companies := []*entity.Company{}
	err := r.db.
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Create is insert-only. A company number already registered in the same
// country yields ErrDuplicate straight from the unique index, so concurrent
// creations cannot both succeed.
func (r *DefaultCompanyRepository) Create(company *entity.Company) error {
	return translateCreateError(r.db.Omit("Scores").Create(company).Error)
}
