package output

// Translator looks up user-facing strings (header labels, chat replies) for
// a language code.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
