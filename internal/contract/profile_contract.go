package contract

// UpdateProfileRequest is a sparse patch: empty or omitted fields mean
// "leave unchanged", never "clear".
type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"omitempty,max=80"`
	Image       string `json:"image" validate:"omitempty,url,max=2048"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	CollegeName string `json:"collegeName" validate:"omitempty,max=120"`
	MobileNo    string `json:"mobileNo" validate:"omitempty,mobileno"`
}

type ProfileResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
}

type UserResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	Image            *string                 `json:"image"`
	Gender           *string                 `json:"gender"`
	CollegeName      *string                 `json:"collegeName"`
	MobileNo         *string                 `json:"mobileNo"`
	RegisteredEvents []*RegistrationResponse `json:"registeredEvents,omitempty"`
	GeneratedPasses  []*PassResponse         `json:"generatedPasses,omitempty"`
	CreatedAt        string                  `json:"createdAt"`
	UpdatedAt        string                  `json:"updatedAt"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
