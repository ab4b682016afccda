package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "paperdrill/internal/platform/errors"
	"paperdrill/internal/platform/httperr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", fmt.Errorf("update article: %w", apperrors.ErrNotFound), http.StatusNotFound, "Not found"},
		{"auth", apperrors.ErrAuthFailed, http.StatusUnauthorized, "Invalid password"},
		{"invalid", apperrors.ErrInvalidInput, http.StatusBadRequest, "invalid request"},
		{"malformed", apperrors.ErrMalformedPayload, http.StatusInternalServerError, "malformed article data"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal error"},
		{"passthrough", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := httperr.Map(tt.err)
			assert.Equal(t, tt.code, he.Code)
			assert.Equal(t, tt.msg, he.Message)
		})
	}
}

func TestHandlerWritesJSONError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	httperr.Handler(zap.NewNop())(apperrors.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
