package repository

import (
	"errors"
	"signifiya/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// FindByID returns (nil, nil) when the user does not exist, so callers
// can tell "no such user" apart from a store failure.
func (u *DefaultUserRepository) FindByID(id string) (*entity.User, error) {
	var user entity.User
	err := u.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRelations eagerly loads the registered events and generated
// passes along with the profile, both in insertion order.
func (u *DefaultUserRepository) FindByIDWithRelations(id string) (*entity.User, error) {
	var user entity.User
	err := u.db.
		Preload("RegisteredEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_registrations.id ASC")
		}).
		Preload("GeneratedPasses", func(db *gorm.DB) *gorm.DB {
			return db.Order("visitor_passes.id ASC")
		}).
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields applies a sparse patch: only the columns present in the map
// are written, everything else keeps its stored value.
func (u *DefaultUserRepository) UpdateFields(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return u.db.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	return u.db.Save(user).Error
}

// EnsureExists creates the user row on first contact with a resolved
// session. The identity provider owns account creation; this only mirrors
// it into our store.
func (u *DefaultUserRepository) EnsureExists(user *entity.User) error {
	return u.db.Where("id = ?", user.ID).FirstOrCreate(user).Error
}
