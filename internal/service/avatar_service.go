package service

import (
	"net/http"
	"signifiya/internal/contract"
	"signifiya/internal/infrastructure/aws/storage"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type AvatarService struct {
	S3 storage.S3Client
}

func NewAvatarService(s3 storage.S3Client) *AvatarService {
	return &AvatarService{S3: s3}
}

// UploadAvatar pushes the raw payload to object storage and returns the
// public URL. There is no transactional link to the profile record: the
// caller patches the image field in a second request, and a failure there
// leaves an orphaned object behind.
func (a *AvatarService) UploadAvatar(data []byte, filename, contentType string) (*contract.UploadResponse, apierror.ErrorResponse) {
	if len(data) == 0 {
		return nil, apierror.NoFileUploadedError
	}

	url, err := a.S3.UploadAvatar(data, filename, contentType)
	if err != nil {
		log.Errorf("failed to upload avatar %q: %v", filename, err)
		return nil, apierror.NewSimple(http.StatusInternalServerError, err.Error())
	}

	return &contract.UploadResponse{Success: true, URL: url}, nil
}
