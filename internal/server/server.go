// Package server assembles the echo HTTP server: middleware, routes and a
// signal-aware run loop.
package server

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	authin "paperdrill/internal/modules/auth/adapter/in"
	catalogin "paperdrill/internal/modules/catalog/adapter/in"
	reflectionin "paperdrill/internal/modules/reflection/adapter/in"
	"paperdrill/internal/platform/httperr"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed pages/*.html
var pages embed.FS

const shutdownTimeout = 10 * time.Second

type Handlers struct {
	Catalog    *catalogin.HTTPHandler
	Reflection *reflectionin.HTTPHandler
	Auth       *authin.HTTPHandler
	Gate       echo.MiddlewareFunc
	Metrics    http.Handler
}

func New(h Handlers, logger *zap.Logger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httperr.Handler(logger)

	e.Use(SecurityHeaders())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	if h.Gate != nil {
		e.Use(h.Gate)
	}

	e.GET("/health", health)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}
	e.GET("/", page("pages/index.html"))
	e.GET("/login", page("pages/login.html"))

	api := e.Group("/api")
	if h.Catalog != nil {
		api.GET("/articles", h.Catalog.List)
	}
	if h.Reflection != nil {
		api.POST("/articles", h.Reflection.Submit)
	}
	if h.Auth != nil {
		api.POST("/login", h.Auth.Login)
	}
	return e
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := pages.ReadFile(name)
		if err != nil {
			return err
		}
		return c.HTMLBlob(http.StatusOK, body)
	}
}
