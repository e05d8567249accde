package service

import (
	"signifiya/internal/contract"
	"signifiya/internal/domain/entity"
	"signifiya/internal/domain/sqlite/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSupportService(t *testing.T) (*SupportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSupportService(
		repository.NewIssueRepository(db),
		repository.NewNewsletterRepository(db),
	), db
}

func TestSubmitIssue_RequiresText(t *testing.T) {
	svc, db := newSupportService(t)

	for _, text := range []string{"", "   "} {
		resp, apierr := svc.SubmitIssue(&contract.SubmitIssueRequest{Text: text})
		assert.Nil(t, resp)
		require.NotNil(t, apierr)

		var count int64
		require.NoError(t, db.Model(&entity.Issue{}).Count(&count).Error)
		assert.Zero(t, count, "no row should be created for blank text")
	}
}

func TestSubmitIssue_NormalizesOptionalFields(t *testing.T) {
	svc, db := newSupportService(t)

	resp, apierr := svc.SubmitIssue(&contract.SubmitIssueRequest{Text: "  help  "})
	require.Nil(t, apierr)
	require.True(t, resp.Success)
	assert.Equal(t, "help", resp.Issue.Text)
	assert.Nil(t, resp.Issue.Email)
	assert.Nil(t, resp.Issue.Name)
	assert.NotZero(t, resp.Issue.ID)

	var stored entity.Issue
	require.NoError(t, db.First(&stored, resp.Issue.ID).Error)
	assert.Equal(t, "help", stored.Text)
	assert.Nil(t, stored.Email)
	assert.Nil(t, stored.Name)
	assert.NotZero(t, stored.CreatedAt)
}

func TestSubmitIssue_TrimsProvidedFields(t *testing.T) {
	svc, _ := newSupportService(t)

	resp, apierr := svc.SubmitIssue(&contract.SubmitIssueRequest{
		Text:  "broken page",
		Email: "  someone@example.com ",
		Name:  " Dev ",
	})
	require.Nil(t, apierr)
	require.NotNil(t, resp.Issue.Email)
	assert.Equal(t, "someone@example.com", *resp.Issue.Email)
	require.NotNil(t, resp.Issue.Name)
	assert.Equal(t, "Dev", *resp.Issue.Name)
}

func TestSubscribeNewsletter_ValidationOrder(t *testing.T) {
	svc, _ := newSupportService(t)

	cases := []struct {
		name    string
		req     contract.SubscribeRequest
		message string
	}{
		{"empty email", contract.SubscribeRequest{Email: "  ", Consent: true}, "Email is required"},
		{"malformed email", contract.SubscribeRequest{Email: "foo", Consent: true}, "Please enter a valid email address"},
		{"missing consent", contract.SubscribeRequest{Email: "a@b.co", Consent: false}, "Please agree to receive communications"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, apierr := svc.SubscribeNewsletter(&tc.req)
			assert.Nil(t, resp)
			require.NotNil(t, apierr)
			assert.Equal(t, 400, apierr.Code())
			assertMessage(t, apierr, tc.message)
		})
	}
}

func TestSubscribeNewsletter_DuplicateIsConflict(t *testing.T) {
	svc, db := newSupportService(t)

	resp, apierr := svc.SubscribeNewsletter(&contract.SubscribeRequest{Email: "Fan@Example.COM", Consent: true})
	require.Nil(t, apierr)
	require.True(t, resp.Success)

	var stored entity.NewsletterSubscription
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "fan@example.com", stored.Email)
	assert.True(t, stored.Consent)

	// Same address, different casing: must be the specific conflict message
	resp, apierr = svc.SubscribeNewsletter(&contract.SubscribeRequest{Email: "fan@example.com", Consent: true})
	assert.Nil(t, resp)
	require.NotNil(t, apierr)
	assert.Equal(t, 409, apierr.Code())
	assertMessage(t, apierr, "This email is already subscribed")

	var count int64
	require.NoError(t, db.Model(&entity.NewsletterSubscription{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
