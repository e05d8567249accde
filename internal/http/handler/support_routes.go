package handler

import (
	"net/http"
	"signifiya/internal/contract"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SupportService interface {
	SubmitIssue(req *contract.SubmitIssueRequest) (*contract.IssueResponse, apierror.ErrorResponse)
	SubscribeNewsletter(req *contract.SubscribeRequest) (*contract.SubscribeResponse, apierror.ErrorResponse)
}

type DefaultSupportRoute struct {
	SupportService SupportService
}

func NewSupportDefault(supportService SupportService) *DefaultSupportRoute {
	return &DefaultSupportRoute{SupportService: supportService}
}

func (s *DefaultSupportRoute) SubmitIssue(c echo.Context) error {
	var req contract.SubmitIssueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := s.SupportService.SubmitIssue(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *DefaultSupportRoute) SubscribeNewsletter(c echo.Context) error {
	var req contract.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := s.SupportService.SubscribeNewsletter(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}
