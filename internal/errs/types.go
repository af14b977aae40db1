package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type RateLimitedError struct {
	ErrorMessage
}

// UnknownFunctionError signals a contract function name absent from the
// configured interface. Detected before any signing or submission happens.
type UnknownFunctionError struct {
	ErrorMessage
}

// UpstreamError carries the status and body of a non-success response from
// an external service.
type UpstreamError struct {
	ErrorMessage
	Service    string
	StatusCode int
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewRateLimitedError(message string) *RateLimitedError {
	return &RateLimitedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnknownFunctionError(name string) *UnknownFunctionError {
	return &UnknownFunctionError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("function %q not found in contract interface", name)},
	}
}

func NewUpstreamError(service string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s request failed: %s", service, body)},
		Service:      service,
		StatusCode:   statusCode,
	}
}
