package service

import (
	"errors"
	"signifiya/internal/contract"
	"signifiya/internal/domain/entity"
	"signifiya/internal/domain/sqlite/repository"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"
	"signifiya/internal/utils/validators"
	"strings"

	"github.com/labstack/gommon/log"
)

type IssueRepository interface {
	Create(issue *entity.Issue) error
}

type NewsletterRepository interface {
	Create(sub *entity.NewsletterSubscription) error
}

type SupportService struct {
	IssueRepo      IssueRepository
	NewsletterRepo NewsletterRepository
}

func NewSupportService(issueRepo IssueRepository, newsletterRepo NewsletterRepository) *SupportService {
	return &SupportService{
		IssueRepo:      issueRepo,
		NewsletterRepo: newsletterRepo,
	}
}

func (s *SupportService) SubmitIssue(req *contract.SubmitIssueRequest) (*contract.IssueResponse, apierror.ErrorResponse) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apierror.IssueTextRequiredError
	}

	issue := &entity.Issue{
		Text:      text,
		Email:     utils.NullableString(req.Email),
		Name:      utils.NullableString(req.Name),
		CreatedAt: utils.NowUTC(),
	}

	if err := s.IssueRepo.Create(issue); err != nil {
		log.Errorf("failed to create issue: %v", err)
		return nil, apierror.NewStoreError(err)
	}

	return &contract.IssueResponse{
		Success: true,
		Issue: &contract.IssueRecord{
			ID:        issue.ID,
			Text:      issue.Text,
			Email:     issue.Email,
			Name:      issue.Name,
			CreatedAt: utils.FormatEpoch(issue.CreatedAt),
		},
	}, nil
}

// SubscribeNewsletter runs its checks in a fixed order so the caller
// always sees the first problem: missing email, then shape, then consent.
func (s *SupportService) SubscribeNewsletter(req *contract.SubscribeRequest) (*contract.SubscribeResponse, apierror.ErrorResponse) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, apierror.EmailRequiredError
	}

	if !validators.IsEmailShape(email) {
		return nil, apierror.InvalidEmailError
	}

	if !req.Consent {
		return nil, apierror.ConsentRequiredError
	}

	sub := &entity.NewsletterSubscription{
		Email:     strings.ToLower(email),
		Consent:   req.Consent,
		CreatedAt: utils.NowUTC(),
	}

	err := s.NewsletterRepo.Create(sub)
	if errors.Is(err, repository.ErrEmailTaken) {
		return nil, apierror.AlreadySubscribedError
	}

	if err != nil {
		log.Errorf("failed to create newsletter subscription: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.SubscribeResponse{Success: true}, nil
}
