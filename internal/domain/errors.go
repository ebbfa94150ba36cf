package domain

import "errors"

var (
	ErrUnauthorized = errors.New("UNAUTHORIZED: caller is not allowed to perform this action")
	ErrValidation   = errors.New("VALIDATION: invalid request")

	ErrArticleNotFound = errors.New("NOT_FOUND: article not found")
	ErrReviewNotFound  = errors.New("NOT_FOUND: review not found")
	ErrUserNotFound    = errors.New("NOT_FOUND: user not found")
	ErrNotReviewer     = errors.New("NOT_REVIEWER: user does not have the reviewer role")

	ErrTerminalStatus          = errors.New("TERMINAL_STATUS: article is in a terminal status, override required")
	ErrInvalidReviewTransition = errors.New("INVALID_TRANSITION: review status change is not allowed")

	ErrConflict = errors.New("CONFLICT: concurrent update, retry the request")
	ErrTimeout  = errors.New("TIMEOUT: storage did not answer in time")
)

// ValidationError names the request field that failed validation. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
