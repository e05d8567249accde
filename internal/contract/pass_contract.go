package contract

type GeneratePassRequest struct {
	PassType string `json:"passType" validate:"required,oneof=day1 day2 dual"`
}

type PassResponse struct {
	ID        int64  `json:"id"`
	PassType  string `json:"passType"`
	PassCode  string `json:"passCode"`
	Price     int    `json:"price"`
	CreatedAt string `json:"createdAt"`
}

type GeneratePassResponse struct {
	Success bool          `json:"success"`
	Pass    *PassResponse `json:"pass"`
}

type RegisterEventRequest struct {
	EventName string `json:"eventName" validate:"required,min=2,max=120"`
	TeamName  string `json:"teamName" validate:"omitempty,max=80"`
}

type RegistrationResponse struct {
	ID        int64   `json:"id"`
	EventName string  `json:"eventName"`
	TeamName  *string `json:"teamName"`
	CreatedAt string  `json:"createdAt"`
}

type RegisterEventResponse struct {
	Success      bool                  `json:"success"`
	Registration *RegistrationResponse `json:"registration"`
}
