package discord

import (
	"sitelang/internal/ports/input"
	"sitelang/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	switcher   input.LanguageSwitchUseCase
	catalog    output.CatalogSource
	translator output.Translator
}

// NewHandler creates a Handler.
func NewHandler(
	switcher input.LanguageSwitchUseCase,
	catalog output.CatalogSource,
	translator output.Translator,
) *Handler {
	return &Handler{
		switcher:   switcher,
		catalog:    catalog,
		translator: translator,
	}
}
