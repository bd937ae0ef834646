package fileserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/multierr"
)

//go:generate mockgen -destination=mocks/filesystem_mock.gen.go -package=fileservermocks net/http FileSystem

const indexFile = "index.html"

//go:generate options-gen -out-filename=fileserver_options.gen.go -from-struct=Options
type Options struct {
	fs       http.FileSystem `option:"mandatory" validate:"required"`
	browse   bool            `default:"true"`
	dotfiles bool
}

// FileServer maps request paths onto a file system. Directories are served by their
// index.html or, when browsing is enabled, by a generated listing. Unless dotfiles are
// enabled, names starting with a dot do not exist for clients.
type FileServer struct {
	fs     http.FileSystem
	static echo.MiddlewareFunc
}

func New(opts Options) (*FileServer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	fsys := opts.fs
	if !opts.dotfiles {
		fsys = dotFileHidingFS{fsys}
	}

	return &FileServer{
		fs: fsys,
		static: middleware.StaticWithConfig(middleware.StaticConfig{
			Root:       ".",
			Index:      indexFile,
			Browse:     opts.browse,
			Filesystem: fsys,
		}),
	}, nil
}

// Register makes the file server answer every request that no route matched.
func (s *FileServer) Register(e *echo.Echo) {
	e.Use(s.Middleware)
}

func (s *FileServer) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	static := s.static(next)

	return func(eCtx echo.Context) error {
		req := eCtx.Request()
		p := req.URL.Path

		if fi, err := s.stat(p); err == nil {
			switch {
			case fi.IsDir() && !strings.HasSuffix(p, "/"):
				target := url.URL{Path: p + "/", RawQuery: req.URL.RawQuery}
				return eCtx.Redirect(http.StatusMovedPermanently, target.String())

			case !fi.IsDir() && strings.HasSuffix(p, "/"):
				return echo.ErrNotFound
			}
		}

		// The static handler unescapes the path on its own.
		escaped := *req.URL
		escaped.Path, escaped.RawPath = req.URL.EscapedPath(), ""
		staticReq := req.WithContext(req.Context())
		staticReq.URL = &escaped

		eCtx.SetRequest(staticReq)
		defer eCtx.SetRequest(req)

		return static(eCtx)
	}
}

func (s *FileServer) stat(name string) (_ fs.FileInfo, errReturned error) {
	f, err := s.fs.Open(path.Clean("/" + name))
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(f))

	return f.Stat()
}
