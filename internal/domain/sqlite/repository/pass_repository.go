package repository

import (
	"signifiya/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPassRepository struct {
	db *gorm.DB
}

func NewPassRepository(db *gorm.DB) *DefaultPassRepository {
	return &DefaultPassRepository{db: db}
}

func (p *DefaultPassRepository) Create(pass *entity.VisitorPass) error {
	return p.db.Create(pass).Error
}

func (p *DefaultPassRepository) FindByUser(userId string) ([]*entity.VisitorPass, error) {
	var passes []*entity.VisitorPass
	err := p.db.Where("user_id = ?", userId).Order("id ASC").Find(&passes).Error
	if err != nil {
		return nil, err
	}
	return passes, nil
}
