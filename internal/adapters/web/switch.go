package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

type resolveResponse struct {
	Language       string `json:"language"`
	Slug           string `json:"slug"`
	TargetLanguage string `json:"target_language"`
	TargetSlug     string `json:"target_slug"`
	Path           string `json:"path"`
	Stage          string `json:"stage"`
}

// SwitchLanguage resolves the equivalent page at click time and redirects to
// it. Without a usable "from" the Referer is used; failing that the other
// language's home page is the answer.
func (h *Handler) SwitchLanguage(c echo.Context) error {
	from := pathOf(c.QueryParam("from"))
	if from == "" {
		from = pathOf(c.Request().Referer())
	}
	loc := entities.Location{Path: from, LangAttr: c.QueryParam("lang")}
	res := h.switcher.Resolve(loc)

	h.logger.Debug("Changement de langue",
		zap.String("from", from),
		zap.String("lang", loc.LangAttr),
		zap.String("to", res.Path),
		zap.String("stage", string(res.Stage)),
	)
	if res.Stage == entities.StageFallback && from != "" {
		h.logger.Info("Aucune page équivalente, redirection vers l'accueil",
			zap.String("from", from), zap.String("slug", res.From.Slug))
	}
	return c.Redirect(http.StatusFound, res.Path)
}

// ResolveAPI exposes the resolver as JSON.
func (h *Handler) ResolveAPI(c echo.Context) error {
	p := pathOf(c.QueryParam("path"))
	if p == "" {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrEmptyPath.Error())
	}
	site := h.switcher.Site()
	res := h.switcher.Resolve(entities.Location{Path: p, LangAttr: c.QueryParam("lang")})
	return c.JSON(http.StatusOK, resolveResponse{
		Language:       site.Code(res.From.Language),
		Slug:           res.From.Slug,
		TargetLanguage: site.Code(res.To.Language),
		TargetSlug:     res.To.Slug,
		Path:           res.Path,
		Stage:          string(res.Stage),
	})
}

// RootRedirect sends "/" to the home page of the visitor's preferred language.
func (h *Handler) RootRedirect(c echo.Context) error {
	site := h.switcher.Site()
	lang := entities.Primary

	tags, _, err := language.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))
	if err == nil && len(tags) > 0 {
		_, idx, conf := h.matcher.Match(tags...)
		if conf != language.No && idx == 1 {
			lang = entities.Secondary
		}
	}
	return c.Redirect(http.StatusFound, site.HomePath(lang))
}

// pathOf keeps only the path of a URL or path, so redirects never leave the site.
func pathOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
