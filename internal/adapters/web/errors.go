package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorHandler replaces echo's default: JSON under /api, plain text elsewhere.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}
		if message == "" || code == http.StatusInternalServerError {
			message = http.StatusText(code)
		}

		if code >= http.StatusInternalServerError {
			logger.Error("❌ Erreur lors du traitement de la requête", zap.String("path", c.Request().URL.Path), zap.Error(err))
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			writeErr = c.JSON(code, map[string]string{"error": message})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			logger.Error("❌ Erreur lors de l'envoi de la réponse d'erreur", zap.Error(writeErr))
		}
	}
}
