package repository

import (
	"errors"
	"gorm.io/gorm"
	"zscore/cmd/internal/domain/entity"
)

type DefaultCountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *DefaultCountryRepository {
	return &DefaultCountryRepository{db: db}
}

func (r *DefaultCountryRepository) FindByISOCode(code string) (*entity.Country, error) {
	var country entity.Country
	err := r.db.Where("iso_code = ?", code).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *DefaultCountryRepository) FindAll(offset, limit int) ([]*entity.Country, error) {
	countries := []*entity.Country{}
	err := r.db.
		Order("iso_code").
		Offset(offset).
		Limit(limit).
		Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// Create inserts the country, returning ErrDuplicate if either the ISO code
// or the name is already taken.
func (r *DefaultCountryRepository) Create(country *entity.Country) error {
	return translateCreateError(r.db.Create(country).Error)
}
