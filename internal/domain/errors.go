package domain

import "errors"

// Domain errors.
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up")
	ErrNotRegistered     = errors.New("student is not registered for this activity")
)

// Stable error codes, used by adapters to pick a status and a message key.
const (
	CodeActivityNotFound  = "activity_not_found"
	CodeAlreadyRegistered = "already_registered"
	CodeNotRegistered     = "not_registered"
)

// Code returns the stable code of a domain error, or "" when err is not one.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrActivityNotFound):
		return CodeActivityNotFound
	case errors.Is(err, ErrAlreadyRegistered):
		return CodeAlreadyRegistered
	case errors.Is(err, ErrNotRegistered):
		return CodeNotRegistered
	default:
		return ""
	}
}
