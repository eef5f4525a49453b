package domain

import "errors"

// Domain errors.
var (
	ErrUnknownLanguage     = errors.New("langue non prise en charge")
	ErrEmptyPath           = errors.New("chemin vide")
	ErrCatalogUnavailable  = errors.New("table de correspondance indisponible")
	ErrInvalidCatalog      = errors.New("table de correspondance invalide")
	ErrHeaderAlreadyInPage = errors.New("en-tête déjà présent dans la page")
	ErrPageWithoutBody     = errors.New("page sans élément body")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrUnknownLanguage, "unknown_language"},
	{ErrEmptyPath, "empty_path"},
	{ErrCatalogUnavailable, "catalog_unavailable"},
	{ErrInvalidCatalog, "invalid_catalog"},
	{ErrHeaderAlreadyInPage, "header_already_in_page"},
	{ErrPageWithoutBody, "page_without_body"},
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ""
}
