package pkg

import "fmt"

// AppError is the domain error envelope returned by HTTP handlers.
//
// Code carries one of the stable taxonomy codes (VALIDATION_ERROR,
// INVALID_OR_EXPIRED_CODE, PERSISTENCE_ERROR, INVOICE_ERROR, AUTH_ERROR,
// GENERATION_ERROR, UNKNOWN_ERROR) plus handler-local codes.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int

	// Details lists per-field violations for aggregated validation errors.
	Details []string
}

// HTTPError is the JSON body rendered for an AppError.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewValidationError aggregates every violated field into one failure.
func NewValidationError(message string, details []string, httpStatus int) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Details: details, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
