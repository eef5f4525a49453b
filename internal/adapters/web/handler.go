package web

import (
	"io/fs"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"sitelang/internal/domain/entities"
	"sitelang/internal/ports/input"
	"sitelang/internal/ports/output"
)

// Handler serves the site pages and the language-switch endpoints.
type Handler struct {
	switcher   input.LanguageSwitchUseCase
	catalog    output.CatalogSource
	translator output.Translator
	pages      fs.FS
	matcher    language.Matcher
	logger     *zap.Logger
}

// NewHandler creates a Handler. pages is the root of the static site.
func NewHandler(
	switcher input.LanguageSwitchUseCase,
	catalog output.CatalogSource,
	translator output.Translator,
	pages fs.FS,
	logger *zap.Logger,
) *Handler {
	site := switcher.Site()
	return &Handler{
		switcher:   switcher,
		catalog:    catalog,
		translator: translator,
		pages:      pages,
		matcher:    newMatcher(site),
		logger:     logger,
	}
}

// newMatcher orders the supported tags primary first so that an empty or
// unmatched Accept-Language lands on the primary language.
func newMatcher(site entities.Site) language.Matcher {
	tags := make([]language.Tag, 0, 2)
	for _, code := range []string{site.PrimaryCode, site.SecondaryCode} {
		tag, err := language.Parse(code)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}
	return language.NewMatcher(tags)
}
