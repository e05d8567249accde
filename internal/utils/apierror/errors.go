package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// APIError serializes as the discriminated failure result
// {"success":false,"error":"..."} every handler promises its callers.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Something went wrong")
	UnauthorizedError   = NewSimple(401, "Missing or invalid session")

	/*
	 * Fixed user-facing messages of the registration core
	 */
	NoFileUploadedError    = NewSimple(400, "no file uploaded")
	MissingUserIDError     = NewSimple(400, "User ID is required")
	IssueTextRequiredError = NewSimple(400, "Issue text is required")
	EmailRequiredError     = NewSimple(400, "Email is required")
	InvalidEmailError      = NewSimple(400, "Please enter a valid email address")
	ConsentRequiredError   = NewSimple(400, "Please agree to receive communications")
	AlreadySubscribedError = NewSimple(409, "This email is already subscribed")
	InvalidPassTypeError   = NewSimple(400, "Unknown pass type")
	RecordNotFoundError    = NewSimple(404, "record not found")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "url":
			problems[field] = append(problems[field], "Value must be a valid URL")
		case "mobileno":
			problems[field] = append(problems[field], "Value must be a valid mobile number")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewStoreError surfaces whatever message the underlying store produced,
// as-is, in the failure result.
func NewStoreError(err error) *APIError {
	return NewSimple(http.StatusInternalServerError, err.Error())
}
