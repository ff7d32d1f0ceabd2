package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure buckets the core distinguishes. Remote
// failures are opaque beyond "did it fail"; the orchestrator never inspects
// provider error codes.
var (
	ErrRemoteUnavailable = errors.New("remote provider unavailable")
	ErrLocalStorage      = errors.New("local storage failure")
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrLocked            = errors.New("account locked")
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("malformed request")
	ErrOfflineOnly       = errors.New("operation requires the remote provider")
)

// ApiErr carries an HTTP status alongside the error so the api layer can
// respond without re-classifying. It wraps a sentinel, keeping errors.Is
// checks working across the boundary.
type ApiErr struct {
	StatusCode int
	err        error
	Field      string
	Cause      error
}

func (e *ApiErr) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Cause.Error())
	}
	return e.err.Error()
}

func (e *ApiErr) Unwrap() error { return e.err }

func New(statusCode int, message string) *ApiErr {
	return &ApiErr{StatusCode: statusCode, err: errors.New(message)}
}

func NewBadRequest(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: fmt.Errorf("%w: %s", ErrBadRequest, message)}
}

func NewValidation(field, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%w: %s", ErrValidation, reason),
		Field:      field,
	}
}

func NewUnauthorized(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: fmt.Errorf("%w: %s", ErrUnauthorized, message)}
}

func NewLocked(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusLocked, err: fmt.Errorf("%w: %s", ErrLocked, message)}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: fmt.Errorf("%s %w", entity, ErrNotFound)}
}

func NewRemoteUnavailable(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusServiceUnavailable, err: ErrRemoteUnavailable, Cause: cause}
}

func NewOfflineOnly(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusServiceUnavailable, err: fmt.Errorf("%w: %s", ErrOfflineOnly, message)}
}

func NewLocalStorage(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrLocalStorage, Cause: cause}
}

func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func IsLocked(err error) bool       { return errors.Is(err, ErrLocked) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}
