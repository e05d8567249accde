package repository

import (
	"signifiya/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultIssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *DefaultIssueRepository {
	return &DefaultIssueRepository{db: db}
}

func (i *DefaultIssueRepository) Create(issue *entity.Issue) error {
	return i.db.Create(issue).Error
}
