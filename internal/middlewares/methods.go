package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/zestagio/dev-server/internal/errors"
)

// NewReadOnlyMethods rejects everything except GET and HEAD with 501 Not Implemented.
func NewReadOnlyMethods() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			switch m := eCtx.Request().Method; m {
			case http.MethodGet, http.MethodHead:
				return next(eCtx)
			default:
				return fmt.Errorf("%s: %w", m, internalerrors.ErrMethodNotSupported)
			}
		}
	}
}
