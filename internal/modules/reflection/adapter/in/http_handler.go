package in

import (
	"net/http"

	"paperdrill/internal/modules/reflection/dto"
	reflectionin "paperdrill/internal/modules/reflection/port/in"
	"paperdrill/internal/platform/httperr"

	"github.com/labstack/echo/v4"
)

// HTTPHandler serves POST /api/articles.
type HTTPHandler struct {
	usecase reflectionin.Usecase
}

func NewHTTPHandler(usecase reflectionin.Usecase) *HTTPHandler {
	return &HTTPHandler{usecase: usecase}
}

func (h *HTTPHandler) Submit(c echo.Context) error {
	var input dto.SubmitInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if _, err := h.usecase.Submit(c.Request().Context(), input); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
