package web

import (
	"bytes"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"sitelang/internal/domain"
	"sitelang/internal/domain/entities"
)

// ServePage serves a file of the static site. HTML pages get the header.
func (h *Handler) ServePage(c echo.Context) error {
	reqPath := c.Request().URL.Path
	name, err := h.lookup(reqPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	data, err := fs.ReadFile(h.pages, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if !isHTML(name) {
		ctype := mime.TypeByExtension(path.Ext(name))
		if ctype == "" {
			ctype = http.DetectContentType(data)
		}
		return c.Blob(http.StatusOK, ctype, data)
	}

	return c.HTMLBlob(http.StatusOK, h.withHeader(reqPath, data))
}

// withHeader returns page with the navigation header injected. Pages that
// cannot take one are served as they are.
func (h *Handler) withHeader(reqPath string, page []byte) []byte {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		h.logger.Warn("⚠️ Page HTML illisible, servie telle quelle", zap.String("path", reqPath), zap.Error(err))
		return page
	}

	loc := entities.Location{Path: reqPath, LangAttr: documentLang(doc)}
	view := buildHeaderView(h.switcher.Site(), loc, h.catalog.Current(), h.translator)
	if err := injectHeader(doc, view); err != nil {
		if errors.Is(err, domain.ErrHeaderAlreadyInPage) || errors.Is(err, domain.ErrPageWithoutBody) {
			h.logger.Warn("⚠️ En-tête non injecté", zap.String("path", reqPath), zap.String("reason", domain.Code(err)))
		}
		return page
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		h.logger.Error("❌ Erreur de rendu de la page", zap.String("path", reqPath), zap.Error(err))
		return page
	}
	return buf.Bytes()
}

// lookup maps a request path to a file of the site: the file itself, the
// index of a directory, or the page with the extension added (flat URLs).
func (h *Handler) lookup(reqPath string) (string, error) {
	name := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if name == "" {
		name = "."
	}

	candidates := []string{name, path.Join(name, "index.html")}
	if ext := h.switcher.Site().Extension; ext != "" && path.Ext(name) == "" {
		candidates = append(candidates, name+ext)
	}
	for _, candidate := range candidates {
		info, err := fs.Stat(h.pages, candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fs.ErrNotExist
}

func isHTML(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
