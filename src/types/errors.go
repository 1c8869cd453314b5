package types

import (
	"errors"
	"net/http"
)

// Error taxonomy shared by controllers and handlers. Controllers detect
// business-rule failures locally and return one of these; handlers map
// them to HTTP statuses with StatusForError. Anything outside the
// taxonomy is treated as unexpected (500).

type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string { return e.Message }

// CaptchaError is raised when the captcha verification service rejects
// a solution, before any send attempt.
type CaptchaError struct {
	Message string
	Details []string
}

func (e *CaptchaError) Error() string { return e.Message }

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// TransientStoreError marks a connection-level store fault that was
// retried internally and is only surfaced after exhaustion.
type TransientStoreError struct {
	Message string
	Err     error
}

func (e *TransientStoreError) Error() string { return e.Message }
func (e *TransientStoreError) Unwrap() error { return e.Err }

func StatusForError(err error) int {
	var validationErr *ValidationError
	var captchaErr *CaptchaError
	var authErr *AuthError
	var notFoundErr *NotFoundError
	var conflictErr *ConflictError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &captchaErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
