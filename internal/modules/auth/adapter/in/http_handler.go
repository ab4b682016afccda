package in

import (
	"net/http"

	"paperdrill/internal/modules/auth/dto"
	authin "paperdrill/internal/modules/auth/port/in"
	"paperdrill/internal/platform/httperr"

	"github.com/labstack/echo/v4"
)

// HTTPHandler serves POST /api/login.
type HTTPHandler struct {
	usecase      authin.Usecase
	secureCookie bool
}

func NewHTTPHandler(usecase authin.Usecase, secureCookie bool) *HTTPHandler {
	return &HTTPHandler{usecase: usecase, secureCookie: secureCookie}
}

func (h *HTTPHandler) Login(c echo.Context) error {
	var input dto.LoginInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	out, err := h.usecase.Login(c.Request().Context(), input)
	if err != nil {
		return httperr.Map(err)
	}
	c.SetCookie(&http.Cookie{
		Name:     dto.CookieName,
		Value:    out.Token,
		Path:     "/",
		MaxAge:   out.MaxAge,
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
