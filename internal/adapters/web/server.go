package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP adapter.
type Server struct {
	echo   *echo.Echo
	addr   string
	logger *zap.Logger
}

// NewServer wires the routes of h on a new echo instance.
func NewServer(addr string, h *Handler, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		if h.catalog.Current() == nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "catalog not loaded")
		}
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/", h.RootRedirect)
	e.GET(switchEndpoint, h.SwitchLanguage)
	e.GET("/api/resolve", h.ResolveAPI)
	e.GET("/*", h.ServePage)

	return &Server{echo: e, addr: addr, logger: logger}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🌐 Serveur HTTP démarré", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("Requête HTTP", fields...)
			return nil
		},
	})
}
