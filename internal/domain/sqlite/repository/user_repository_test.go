package repository

import (
	"signifiya/internal/domain/entity"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A second pool connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.NewsletterSubscription{},
		&entity.EventRegistration{},
		&entity.VisitorPass{},
	))
	return db
}

func TestUserRepository_FindByID_NotFoundIsNilNil(t *testing.T) {
	repo := NewUserRepository(newRepoDB(t))

	user, err := repo.FindByID("missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_EnsureExists_IsIdempotent(t *testing.T) {
	db := newRepoDB(t)
	repo := NewUserRepository(db)

	first := &entity.User{ID: "u1", Name: "Asha", Email: "a@example.com", CreatedAt: 1, UpdatedAt: 1}
	require.NoError(t, repo.EnsureExists(first))

	// A later session with fresher attributes must not overwrite the row
	second := &entity.User{ID: "u1", Name: "Renamed", Email: "a@example.com", CreatedAt: 2, UpdatedAt: 2}
	require.NoError(t, repo.EnsureExists(second))

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Asha", stored.Name)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_UpdateFields_EmptyMapIsNoop(t *testing.T) {
	db := newRepoDB(t)
	repo := NewUserRepository(db)
	require.NoError(t, db.Create(&entity.User{ID: "u1", Name: "Asha", Email: "a@example.com", CreatedAt: 1, UpdatedAt: 1}).Error)

	require.NoError(t, repo.UpdateFields("u1", map[string]any{}))

	stored, err := repo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.UpdatedAt)
}

func TestNewsletterRepository_DuplicateEmail(t *testing.T) {
	repo := NewNewsletterRepository(newRepoDB(t))

	require.NoError(t, repo.Create(&entity.NewsletterSubscription{Email: "a@b.co", Consent: true, CreatedAt: 1}))

	err := repo.Create(&entity.NewsletterSubscription{Email: "a@b.co", Consent: true, CreatedAt: 2})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
