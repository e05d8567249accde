package handler

import (
	"io"
	"net/http"
	"signifiya/internal/contract"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AvatarService interface {
	UploadAvatar(data []byte, filename, contentType string) (*contract.UploadResponse, apierror.ErrorResponse)
}

type DefaultAvatarRoute struct {
	AvatarService AvatarService
}

func NewAvatarDefault(avatarService AvatarService) *DefaultAvatarRoute {
	return &DefaultAvatarRoute{AvatarService: avatarService}
}

func (a *DefaultAvatarRoute) UploadAvatar(c echo.Context) error {
	if _, cerr := utils.GetSessionFromContext(c); cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var data []byte
	var filename, contentType string

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, oerr := fileHeader.Open()
		if oerr != nil {
			log.Errorf("failed to open uploaded file: %v", oerr)
			return c.JSON(http.StatusBadRequest, apierror.NoFileUploadedError)
		}
		defer file.Close()

		data, err = io.ReadAll(file)
		if err != nil {
			log.Errorf("failed to read uploaded file: %v", err)
			return c.JSON(http.StatusBadRequest, apierror.NoFileUploadedError)
		}
		filename = fileHeader.Filename
		contentType = fileHeader.Header.Get("Content-Type")
	}

	// An absent form file reaches the service as an empty payload and
	// comes back as the canonical "no file uploaded" failure.
	resp, apierr := a.AvatarService.UploadAvatar(data, filename, contentType)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
