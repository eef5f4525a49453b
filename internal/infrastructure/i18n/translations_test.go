package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTranslator(t *testing.T) {
	tr := NewTranslator("fr", zap.NewNop())

	assert.Equal(t, "Réseau publicitaire", tr.T("fr", "nav.network", nil))
	assert.Equal(t, "Advertising network", tr.T("en", "nav.network", nil))
	assert.Equal(t, "Advertising network", tr.T("en-CA", "nav.network", nil))
	assert.Equal(t, "Accueil", tr.T("", "nav.home", nil), "empty locale uses the default")
	assert.Equal(t, "Accueil", tr.T("de", "nav.home", nil), "unsupported locale uses the default")
	assert.Equal(t, "nav.unknown", tr.T("fr", "nav.unknown", nil))
	assert.Equal(t, "", tr.T("fr", "", nil))

	assert.Equal(t, "Equivalent page: /pages/en/map.html",
		tr.T("en", "chat.link.result", map[string]any{"Path": "/pages/en/map.html"}))
}

func TestTranslatorCatalogsHaveSameKeys(t *testing.T) {
	keys := []string{
		"header.brand", "header.menu_toggle", "header.switch_label", "header.switch_title",
		"nav.home", "nav.network", "nav.map", "nav.industries", "nav.about", "nav.contact", "nav.login",
		"chat.link.result", "chat.link.fallback", "chat.link.missing_url",
		"error.generic", "error.catalog_unavailable",
	}
	tr := NewTranslator("fr", nil)
	for _, key := range keys {
		assert.NotEqual(t, key, tr.T("fr", key, nil), key)
		assert.NotEqual(t, key, tr.T("en", key, nil), key)
	}
}
