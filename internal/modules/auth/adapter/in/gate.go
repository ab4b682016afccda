package in

import (
	"net/http"

	"paperdrill/internal/modules/auth/dto"
	authin "paperdrill/internal/modules/auth/port/in"

	"github.com/labstack/echo/v4"
)

// Gate redirects page requests according to the session cookie.
func Gate(usecase authin.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(dto.CookieName); err == nil {
				token = cookie.Value
			}
			switch usecase.Gate(c.Request().URL.Path, token) {
			case dto.RedirectHome:
				return c.Redirect(http.StatusTemporaryRedirect, "/")
			case dto.RedirectLogin:
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			default:
				return next(c)
			}
		}
	}
}
