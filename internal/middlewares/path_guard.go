package middlewares

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/zestagio/dev-server/internal/errors"
)

// NewPathGuard rejects request paths with ".." segments before anything touches the filesystem.
func NewPathGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			u := eCtx.Request().URL

			p, err := url.PathUnescape(u.EscapedPath())
			if err != nil {
				return internalerrors.NewServerError(http.StatusBadRequest, "malformed path", err)
			}

			if hasDotDot(p) {
				return fmt.Errorf("path %q: %w", p, internalerrors.ErrForbidden)
			}
			return next(eCtx)
		}
	}
}

func hasDotDot(p string) bool {
	if !strings.Contains(p, "..") {
		return false
	}

	for _, seg := range strings.FieldsFunc(p, isSlash) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isSlash(r rune) bool {
	return r == '/' || r == '\\'
}
