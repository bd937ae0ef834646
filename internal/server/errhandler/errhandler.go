package errhandler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/dev-server/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger          *zap.Logger                                    `option:"mandatory" validate:"required"`
	productionMode  bool                                           `option:"mandatory"`
	responseBuilder func(code int, msg string, details string) any `option:"mandatory" validate:"required"`
}

type Handler struct {
	lg              *zap.Logger
	productionMode  bool
	responseBuilder func(code int, msg string, details string) any
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}

	return Handler{
		lg:              opts.logger,
		productionMode:  opts.productionMode,
		responseBuilder: opts.responseBuilder,
	}, nil
}

// Handle writes an HTML error page with the status code derived from err.
// HEAD requests get the status line and headers only.
func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	code, msg, details := h.processError(err)
	if internalerrors.IsServerFault(code) {
		h.lg.Error("unexpected error", zap.Error(err), zap.String("path", eCtx.Request().URL.Path))
	}

	if eCtx.Request().Method == http.MethodHead {
		if err := eCtx.NoContent(code); err != nil {
			h.lg.Error("error handler no content", zap.Error(err))
		}
		return
	}

	var page bytes.Buffer
	if err := pageTemplate.Execute(&page, h.responseBuilder(code, msg, details)); err != nil {
		h.lg.Error("error handler template", zap.Error(err))
		return
	}

	if err := eCtx.HTMLBlob(code, page.Bytes()); err != nil {
		h.lg.Error("error handler HTML", zap.Error(err))
	}
}

func (h Handler) processError(err error) (code int, msg string, details string) {
	code, msg, details = internalerrors.ProcessServerError(err)

	// If production mode is ON method should return only code and message and hide details.
	if h.productionMode {
		details = ""
	}

	return code, msg, details
}

var pageTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE HTML>
<html lang="en">
    <head>
        <meta charset="utf-8">
        <title>Error response</title>
    </head>
    <body>
        <h1>Error response</h1>
        <p>Error code: {{ .Code }}</p>
        <p>Message: {{ .Message }}.</p>
        {{- with .Details }}
        <p>Error code explanation: {{ . }}</p>
        {{- end }}
    </body>
</html>
`))
