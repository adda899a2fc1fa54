package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. API responses carry
// personal financial data and are never cached.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'self'")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if strings.HasPrefix(c.Request().URL.Path, "/api/") {
				h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
				h.Set("Pragma", "no-cache")
			}

			return next(c)
		}
	}
}
