package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSitePath(t *testing.T) {
	site := DefaultSite()

	assert.Equal(t, "/pages/en/advertising-network.html", site.Path(Nested, Secondary, "advertising-network"))
	assert.Equal(t, "/pages/en/advertising-network.html", site.Path(Nested, Secondary, "advertising-network.html"))
	assert.Equal(t, "/pages/fr/index.html", site.Path(Nested, Primary, ""))
	assert.Equal(t, "/fr/connexion", site.Path(Flat, Primary, "connexion"))
	assert.Equal(t, "/fr/connexion", site.Path(Flat, Primary, "connexion.html"))
	assert.Equal(t, "/en/", site.Path(Flat, Secondary, "index"))

	site.Prefix = ""
	assert.Equal(t, "/en/map.html", site.Path(Nested, Secondary, "map"))
}

func TestSiteHomePath(t *testing.T) {
	site := DefaultSite()
	assert.Equal(t, "/pages/fr/index.html", site.HomePath(Primary))

	site.DefaultConvention = Flat
	assert.Equal(t, "/en/", site.HomePath(Secondary))
}

func TestSiteLanguageForCode(t *testing.T) {
	site := DefaultSite()

	l, ok := site.LanguageForCode("EN")
	assert.True(t, ok)
	assert.Equal(t, Secondary, l)

	l, ok = site.LanguageForCode("fr")
	assert.True(t, ok)
	assert.Equal(t, Primary, l)

	_, ok = site.LanguageForCode("de")
	assert.False(t, ok)
}

func TestParseConvention(t *testing.T) {
	c, ok := ParseConvention(" Flat ")
	assert.True(t, ok)
	assert.Equal(t, Flat, c)

	_, ok = ParseConvention("deep")
	assert.False(t, ok)
}

func TestLanguageOther(t *testing.T) {
	assert.Equal(t, Secondary, Primary.Other())
	assert.Equal(t, Primary, Secondary.Other())

	l, ok := ParseLanguage(Secondary.String())
	assert.True(t, ok)
	assert.Equal(t, Secondary, l)
}
