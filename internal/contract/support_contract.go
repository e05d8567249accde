package contract

type SubmitIssueRequest struct {
	Text  string `json:"text"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type IssueResponse struct {
	Success bool         `json:"success"`
	Issue   *IssueRecord `json:"issue"`
}

type IssueRecord struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt"`
}

type SubscribeRequest struct {
	Email   string `json:"email"`
	Consent bool   `json:"consent"`
}

type SubscribeResponse struct {
	Success bool `json:"success"`
}
