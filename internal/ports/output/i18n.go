package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Localizer is a T that can also resolve a client's preferred locale
// (Accept-Language header, Discord locale) to a supported one.
type Localizer interface {
	T
	Match(preferred string) string
}
