package webutil

import (
	"errors"
	"net/http"
)

const (
	msgBadRequest     = "Bad Request"
	msgInternalServer = "Internal Server Error"
)

// HTTPError is an error with an associated HTTP status code
// and a user-facing message.
type HTTPError struct {
	cause   error  // The underlying error, can be nil
	Code    int    // HTTP status code
	Message string // User-facing error message
}

// Error returns the Message, which is intended for the HTTP response.
func (he HTTPError) Error() string {
	return he.Message
}

func (he HTTPError) Unwrap() error {
	return he.cause
}

func defaultMessageIfEmpty(initialMsg, defaultVal string) string {
	if initialMsg == "" {
		return defaultVal
	}
	return initialMsg
}

// NewHTTPError creates an HTTPError whose message is used verbatim.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		cause:   errors.New(message),
		Code:    code,
		Message: message,
	}
}

// NewHTTPErrorWrap creates an HTTPError that keeps cause for logging while
// only message is sent to the client.
func NewHTTPErrorWrap(code int, message string, cause error) *HTTPError {
	return &HTTPError{
		cause:   cause,
		Code:    code,
		Message: message,
	}
}

func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest))
}

func ErrBadRequestWrap(message string, cause error) *HTTPError {
	return NewHTTPErrorWrap(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest), cause)
}

func ErrInternalServer(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, defaultMessageIfEmpty(message, msgInternalServer))
}

// ErrInternalServerWrap exposes message publicly and hides cause.
func ErrInternalServerWrap(message string, cause error) *HTTPError {
	return NewHTTPErrorWrap(http.StatusInternalServerError, defaultMessageIfEmpty(message, msgInternalServer), cause)
}
