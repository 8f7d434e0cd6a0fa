package client

import (
	"encoding/json"
	"net/http"
)

// ErrorType classifies an API failure as reported by the remote service.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
)

// Error is the decoded body of a failed API call.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
	Param   string    `json:"param,omitempty"`

	// HTTPStatus is the status code the error arrived with.
	HTTPStatus int `json:"-"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return http.StatusText(e.HTTPStatus)
	}
	return e.Message
}

// The API wraps errors in a single-key envelope.
type errorEnvelope struct {
	Error *Error `json:"error"`
}

func decodeError(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == nil {
		// Undecodable bodies still surface as an API error carrying the
		// status code.
		return &Error{HTTPStatus: resp.StatusCode}
	}
	envelope.Error.HTTPStatus = resp.StatusCode
	return envelope.Error
}
