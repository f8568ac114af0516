package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDepartmentNotFound is returned when no department matches the given id.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrSubjectNotFound is returned when no subject matches the given id.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrClassNotFound is returned when no class matches the given id.
	ErrClassNotFound = errors.New("class not found")
	// ErrAlreadyEnrolled is returned when a (student, class) pair already exists.
	ErrAlreadyEnrolled = errors.New("student already enrolled in class")
	// ErrClassFull is returned when a class has reached its capacity.
	ErrClassFull = errors.New("class is full")
	// ErrInvalidSession is returned when a session token is missing, expired or revoked.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs an error body with a status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a generic 500; the underlying error is logged by the handler
// layer, never returned to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrDepartmentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DEPARTMENT_NOT_FOUND")
	case errors.Is(err, ErrSubjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBJECT_NOT_FOUND")
	case errors.Is(err, ErrClassNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case errors.Is(err, ErrAlreadyEnrolled):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_ENROLLED")
	case errors.Is(err, ErrClassFull):
		return NewHTTPError(http.StatusConflict, err.Error(), "CLASS_FULL")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
