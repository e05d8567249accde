package handler

import (
	"net/http"
	"signifiya/internal/contract"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PassService interface {
	GeneratePass(userId string, req *contract.GeneratePassRequest) (*contract.GeneratePassResponse, apierror.ErrorResponse)
	RegisterEvent(userId string, req *contract.RegisterEventRequest) (*contract.RegisterEventResponse, apierror.ErrorResponse)
}

type DefaultPassRoute struct {
	PassService PassService
}

func NewPassDefault(passService PassService) *DefaultPassRoute {
	return &DefaultPassRoute{PassService: passService}
}

func (p *DefaultPassRoute) GeneratePass(c echo.Context) error {
	sess, cerr := utils.GetSessionFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.GeneratePassRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.PassService.GeneratePass(sess.ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (p *DefaultPassRoute) RegisterEvent(c echo.Context) error {
	sess, cerr := utils.GetSessionFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.RegisterEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.PassService.RegisterEvent(sess.ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}
