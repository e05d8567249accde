package repository

import (
	"signifiya/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *DefaultEventRepository {
	return &DefaultEventRepository{db: db}
}

func (e *DefaultEventRepository) Create(reg *entity.EventRegistration) error {
	return e.db.Create(reg).Error
}

func (e *DefaultEventRepository) FindByUser(userId string) ([]*entity.EventRegistration, error) {
	var regs []*entity.EventRegistration
	err := e.db.Where("user_id = ?", userId).Order("id ASC").Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}
