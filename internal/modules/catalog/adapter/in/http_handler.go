package in

import (
	"net/http"

	catalogin "paperdrill/internal/modules/catalog/port/in"
	"paperdrill/internal/platform/httperr"

	"github.com/labstack/echo/v4"
)

// HTTPHandler serves GET /api/articles.
type HTTPHandler struct {
	usecase catalogin.Usecase
}

func NewHTTPHandler(usecase catalogin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) List(c echo.Context) error {
	catalog, err := h.usecase.Load(c.Request().Context())
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, catalog)
}
