package repository

import (
	"gorm.io/gorm"
	"zscore/cmd/internal/domain/entity"
)

type DefaultScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *DefaultScoreRepository {
	return &DefaultScoreRepository{db: db}
}

// FindByCompanyID returns the company's scores in the order they were stored.
func (r *DefaultScoreRepository) FindByCompanyID(companyID int64, offset, limit int) ([]*entity.Score, error) {
	scores := []*entity.Score{}
	err := r.db.
		Where("company_id = ?", companyID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// CreateAll stores the scores in one transaction, either all of them or none.
func (r *DefaultScoreRepository) CreateAll(scores []*entity.Score) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, score := range scores {
			if err := tx.Create(score).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
