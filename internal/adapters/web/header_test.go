package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
	"sitelang/internal/infrastructure/i18n"
)

func TestBuildHeaderViewSecondary(t *testing.T) {
	tr := i18n.NewTranslator("fr", zap.NewNop())
	loc := entities.Location{Path: "/pages/en/advertising-network.html", LangAttr: "en-CA"}

	v := buildHeaderView(entities.DefaultSite(), loc, testCatalog(), tr)

	assert.Equal(t, "en", v.Code)
	assert.Equal(t, "/pages/en/index.html", v.HomeHref)
	assert.Equal(t, "fr", v.SwitchLang)
	assert.Equal(t, "Français", v.SwitchLabel)
	assert.Equal(t, "/switch-language?from=%2Fpages%2Fen%2Fadvertising-network.html&lang=en", v.SwitchHref)
	assert.Equal(t, []navLink{
		{Label: "Home", Href: "/pages/en/index.html"},
		{Label: "Advertising network", Href: "/pages/en/advertising-network.html", Active: true},
		{Label: "Map", Href: "/pages/en/map.html"},
	}, v.Links)
}

func TestInjectHeaderTwice(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><p>x</p></body></html>`))
	require.NoError(t, err)

	v := headerView{Code: "fr", Brand: "B", HomeHref: "/", SwitchHref: "/switch-language"}
	require.NoError(t, injectHeader(doc, v))
	require.ErrorIs(t, injectHeader(doc, v), domain.ErrHeaderAlreadyInPage)

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, doc))
	assert.Equal(t, 1, strings.Count(buf.String(), `id="site-header"`))
	assert.Contains(t, buf.String(), `aria-controls="site-nav"`)
}

func TestInjectHeaderWiresMenuToggle(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><p>x</p></body></html>`))
	require.NoError(t, err)
	require.NoError(t, injectHeader(doc, headerView{Code: "fr", MenuLabel: "Menu"}))

	header := findByID(doc, headerID)
	require.NotNil(t, header)
	script := header.LastChild
	require.NotNil(t, script)
	require.Equal(t, atom.Script, script.DataAtom)
	require.NotNil(t, script.FirstChild)
	js := script.FirstChild.Data
	assert.Contains(t, js, `getElementById("site-nav")`)
	assert.Contains(t, js, `querySelector("#site-header .site-header__toggle")`)
	assert.Contains(t, js, `"aria-expanded"`)
	assert.Contains(t, js, `classList.toggle("is-open", open)`)

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, doc))
	out := buf.String()
	assert.Contains(t, out, `class="site-header__toggle" aria-controls="site-nav" aria-expanded="false"`)
	assert.Contains(t, out, `var open = button.getAttribute("aria-expanded") !== "true";`, "script must render unescaped")
}

func TestInjectHeaderWithoutBody(t *testing.T) {
	doc := &html.Node{Type: html.DocumentNode}
	assert.ErrorIs(t, injectHeader(doc, headerView{}), domain.ErrPageWithoutBody)
}

func TestDocumentLang(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html lang="en-CA"><body></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "en-CA", documentLang(doc))

	doc, err = html.Parse(strings.NewReader(`<html lang=" "><body></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, " ", documentLang(doc))

	doc, err = html.Parse(strings.NewReader(`<p>fragment</p>`))
	require.NoError(t, err)
	assert.Equal(t, "", documentLang(doc))
}
