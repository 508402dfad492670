package discord

import "mergington/internal/domain"

// ErrorMessageKey maps an error to the translation key shown to the user.
// Non-domain errors share a generic message.
func ErrorMessageKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "error." + code
	}
	return "error.internal"
}
