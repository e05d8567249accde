package handler

import (
	"net/http"
	"signifiya/internal/contract"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	UpdateProfile(userId string, req *contract.UpdateProfileRequest) (*contract.ProfileResponse, apierror.ErrorResponse)
	GetProfile(userId string) *contract.UserResponse
}

type DefaultProfileRoute struct {
	ProfileService ProfileService
}

func NewProfileDefault(profileService ProfileService) *DefaultProfileRoute {
	return &DefaultProfileRoute{ProfileService: profileService}
}

// GetProfile always answers 200: the profile record, or null when there
// is nothing to show. Callers cannot tell a missing user from a store
// failure here; that distinction stops at the service log.
func (p *DefaultProfileRoute) GetProfile(c echo.Context) error {
	sess, cerr := utils.GetSessionFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	profile := p.ProfileService.GetProfile(sess.ID)
	return c.JSON(http.StatusOK, profile)
}

func (p *DefaultProfileRoute) UpdateProfile(c echo.Context) error {
	sess, cerr := utils.GetSessionFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.ProfileService.UpdateProfile(sess.ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
