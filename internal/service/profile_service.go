package service

import (
	"signifiya/internal/contract"
	"signifiya/internal/domain/entity"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id string) (*entity.User, error)
	FindByIDWithRelations(id string) (*entity.User, error)
	UpdateFields(id string, fields map[string]any) error
}

type ProfileService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewProfileService(userRepo UserRepository, validate *validator.Validate) *ProfileService {
	return &ProfileService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// UpdateProfile applies a sparse patch to the user's profile. Only the
// provided, non-empty fields are written; whatever the caller omitted
// keeps its stored value. The response carries the record as read back
// from the store after the write.
func (p *ProfileService) UpdateProfile(userId string, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse) {
	userId = strings.TrimSpace(userId)
	if userId == "" {
		return nil, apierror.MissingUserIDError
	}

	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := p.UserRepo.FindByID(userId)
	if err != nil {
		log.Errorf("failed to fetch user %s for update: %v", userId, err)
		return nil, apierror.NewStoreError(err)
	}

	if existing == nil {
		return nil, apierror.RecordNotFoundError
	}

	patch := newProfilePatch()
	patch.set("name", req.Name)
	patch.set("image", req.Image)
	patch.set("gender", req.Gender)
	patch.set("college_name", req.CollegeName)
	patch.set("mobile_no", req.MobileNo)

	if patch.dirty() {
		patch.fields["updated_at"] = utils.NowUTC()
		if err := p.UserRepo.UpdateFields(userId, patch.fields); err != nil {
			log.Errorf("failed to update user %s: %v", userId, err)
			return nil, apierror.NewStoreError(err)
		}
	}

	updated, err := p.UserRepo.FindByID(userId)
	if err != nil || updated == nil {
		log.Errorf("failed to read back user %s after update: %v", userId, err)
		return nil, apierror.InternalServerError
	}

	return &contract.ProfileResponse{
		Success: true,
		User:    toUserResponse(updated),
	}, nil
}

// GetProfile is a deliberately lenient read: an empty id is "no result",
// and any lookup failure collapses to "no result" as well. The repository
// keeps the not-found/store-error distinction; only this boundary drops it.
func (p *ProfileService) GetProfile(userId string) *contract.UserResponse {
	userId = strings.TrimSpace(userId)
	if userId == "" {
		return nil
	}

	user, err := p.UserRepo.FindByIDWithRelations(userId)
	if err != nil {
		log.Errorf("failed to fetch profile %s: %v", userId, err)
		return nil
	}

	if user == nil {
		return nil
	}
	return toUserResponse(user)
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Image:       user.Image,
		Gender:      user.Gender,
		CollegeName: user.CollegeName,
		MobileNo:    user.MobileNo,
		CreatedAt:   utils.FormatEpoch(user.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(user.UpdatedAt),
	}

	for _, reg := range user.RegisteredEvents {
		resp.RegisteredEvents = append(resp.RegisteredEvents, toRegistrationResponse(reg))
	}
	for _, pass := range user.GeneratedPasses {
		resp.GeneratedPasses = append(resp.GeneratedPasses, toPassResponse(pass))
	}
	return resp
}
