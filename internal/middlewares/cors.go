package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Values of the CORS headers attached to every response.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type"
)

// NewCORSHeaders returns a middleware that sets the CORS headers right before the
// response head is written, whatever the status and the handler that produced it.
func NewCORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			resp := eCtx.Response()
			resp.Before(func() {
				h := resp.Header()
				h.Set(echo.HeaderAccessControlAllowOrigin, AllowOrigin)
				h.Set(echo.HeaderAccessControlAllowMethods, AllowMethods)
				h.Set(echo.HeaderAccessControlAllowHeaders, AllowHeaders)
			})
			return next(eCtx)
		}
	}
}

// NewPreflight answers every OPTIONS request with 204 No Content.
func NewPreflight() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			if eCtx.Request().Method == http.MethodOptions {
				return eCtx.NoContent(http.StatusNoContent)
			}
			return next(eCtx)
		}
	}
}
