package discord

import (
	"sitelang/internal/domain"
	"sitelang/internal/ports/output"
)

// DomainErrorMessage resolves err to a user-facing message through the
// translator ("error.<code>"), falling back to the generic message.
func DomainErrorMessage(tr output.Translator, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		key := "error." + code
		if msg := tr.T(locale, key, nil); msg != key {
			return msg
		}
	}
	return tr.T(locale, "error.generic", nil)
}
