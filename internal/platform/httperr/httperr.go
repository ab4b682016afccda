// Package httperr maps application errors onto HTTP responses with a
// {"error": "..."} body.
package httperr

import (
	"errors"
	"net/http"

	apperrors "paperdrill/internal/platform/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Map(err error) *echo.HTTPError {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, apperrors.ErrAuthFailed):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, apperrors.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	case errors.Is(err, apperrors.ErrMalformedPayload):
		return echo.NewHTTPError(http.StatusInternalServerError, "malformed article data")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

// Handler is an echo.HTTPErrorHandler writing mapped errors as JSON. Server
// errors are logged with their cause.
func Handler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		he := Map(err)
		if he.Code >= http.StatusInternalServerError && logger != nil {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, map[string]string{"error": message})
	}
}
