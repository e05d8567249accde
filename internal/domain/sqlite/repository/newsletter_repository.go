package repository

import (
	"errors"
	"signifiya/internal/domain/entity"
	"strings"

	"gorm.io/gorm"
)

// ErrEmailTaken is returned when the unique index on the email column
// rejects a second subscription for the same address.
var ErrEmailTaken = errors.New("newsletter: email already subscribed")

type DefaultNewsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) *DefaultNewsletterRepository {
	return &DefaultNewsletterRepository{db: db}
}

func (n *DefaultNewsletterRepository) Create(sub *entity.NewsletterSubscription) error {
	err := n.db.Create(sub).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrEmailTaken
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Older driver versions surface the raw sqlite message instead of
	// translating it.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
