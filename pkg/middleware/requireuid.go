package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUID is an optional strict variant of DevLogin. When enabled=true it
// expects the caller to identify itself via header or cookie and rejects the
// request otherwise. When enabled=false it passes through (use DevLogin
// instead).
func RequireUID(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c) // bypass in development
			}
			uid := c.Request().Header.Get("X-Farm-Uid")
			if uid == "" {
				if ck, err := c.Cookie("FARM_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing farm UID"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
