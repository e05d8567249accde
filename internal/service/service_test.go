package service

import (
	"signifiya/internal/domain/entity"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"
	"signifiya/internal/utils/validators"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A second pool connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Issue{},
		&entity.NewsletterSubscription{},
		&entity.EventRegistration{},
		&entity.VisitorPass{},
	)
	require.NoError(t, err)
	return db
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("mobileno", validators.MobileNo))
	return validate
}

func seedUser(t *testing.T, db *gorm.DB, id string) *entity.User {
	t.Helper()

	now := utils.NowUTC()
	user := &entity.User{
		ID:        id,
		Name:      "Asha Rao",
		Email:     id + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string {
	return &s
}

// assertMessage checks the user-facing message of a failure result.
func assertMessage(t *testing.T, apierr apierror.ErrorResponse, want string) {
	t.Helper()

	ae, ok := apierr.(*apierror.APIError)
	require.True(t, ok, "expected *apierror.APIError, got %T", apierr)
	assert.Equal(t, want, ae.Message)
}
