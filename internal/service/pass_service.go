package service

import (
	"signifiya/internal/contract"
	"signifiya/internal/domain/entity"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"
	"signifiya/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// Day passes are flat-priced; the dual pass covers both days.
var passPrices = map[entity.PassType]int{
	entity.PassTypeDay1: 49,
	entity.PassTypeDay2: 49,
	entity.PassTypeDual: 79,
}

type PassRepository interface {
	Create(pass *entity.VisitorPass) error
}

type EventRepository interface {
	Create(reg *entity.EventRegistration) error
}

type PassService struct {
	PassRepo  PassRepository
	EventRepo EventRepository
	Validate  *validator.Validate
}

func NewPassService(passRepo PassRepository, eventRepo EventRepository, validate *validator.Validate) *PassService {
	return &PassService{
		PassRepo:  passRepo,
		EventRepo: eventRepo,
		Validate:  validate,
	}
}

// GeneratePass mints a visitor pass for the signed-in user. The pass code
// is what gets mailed out and shown at the gate.
func (p *PassService) GeneratePass(userId string, req *contract.GeneratePassRequest) (*contract.GeneratePassResponse, apierror.ErrorResponse) {
	if userId == "" {
		return nil, apierror.MissingUserIDError
	}

	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	passType := entity.PassType(req.PassType)
	price, ok := passPrices[passType]
	if !ok {
		return nil, apierror.InvalidPassTypeError
	}

	pass := &entity.VisitorPass{
		ID:        uid.Generate(),
		UserID:    userId,
		PassType:  passType,
		PassCode:  uuid.NewString(),
		Price:     price,
		CreatedAt: utils.NowUTC(),
	}

	if err := p.PassRepo.Create(pass); err != nil {
		log.Errorf("failed to create visitor pass for %s: %v", userId, err)
		return nil, apierror.NewStoreError(err)
	}

	return &contract.GeneratePassResponse{
		Success: true,
		Pass:    toPassResponse(pass),
	}, nil
}

func (p *PassService) RegisterEvent(userId string, req *contract.RegisterEventRequest) (*contract.RegisterEventResponse, apierror.ErrorResponse) {
	if userId == "" {
		return nil, apierror.MissingUserIDError
	}

	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	reg := &entity.EventRegistration{
		UserID:    userId,
		EventName: req.EventName,
		TeamName:  utils.NullableString(req.TeamName),
		CreatedAt: utils.NowUTC(),
	}

	if err := p.EventRepo.Create(reg); err != nil {
		log.Errorf("failed to register %s for event %q: %v", userId, req.EventName, err)
		return nil, apierror.NewStoreError(err)
	}

	return &contract.RegisterEventResponse{
		Success:      true,
		Registration: toRegistrationResponse(reg),
	}, nil
}

func toPassResponse(pass *entity.VisitorPass) *contract.PassResponse {
	return &contract.PassResponse{
		ID:        pass.ID,
		PassType:  string(pass.PassType),
		PassCode:  pass.PassCode,
		Price:     pass.Price,
		CreatedAt: utils.FormatEpoch(pass.CreatedAt),
	}
}

func toRegistrationResponse(reg *entity.EventRegistration) *contract.RegistrationResponse {
	return &contract.RegistrationResponse{
		ID:        reg.ID,
		EventName: reg.EventName,
		TeamName:  reg.TeamName,
		CreatedAt: utils.FormatEpoch(reg.CreatedAt),
	}
}
