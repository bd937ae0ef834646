package server

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/labstack/echo/v4"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/dev-server/internal/middlewares"
)

const shutdownTimeout = 3 * time.Second

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger            *zap.Logger           `option:"mandatory" validate:"required"`
	addr              string                `option:"mandatory" validate:"required"`
	handlersRegistrar func(e *echo.Echo)    `option:"mandatory" validate:"required"`
	errHandler        echo.HTTPErrorHandler `option:"mandatory" validate:"required"`
	maxConnections    int                   `validate:"min=0"`
	readHeaderTimeout time.Duration         `validate:"min=0"`
	idleTimeout       time.Duration         `validate:"min=0"`
	compress          bool
}

// BindError is returned when the listener cannot be created.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

type Server struct {
	lg             *zap.Logger
	srv            *http.Server
	maxConnections int
	openConns      *atomic.Int64
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = opts.errHandler
	e.Use(
		middlewares.NewCORSHeaders(),
		middlewares.NewRequestID(),
		middlewares.NewRequestLogger(opts.logger),
		middlewares.NewRecovery(opts.logger),
		middlewares.NewPreflight(),
		middlewares.NewReadOnlyMethods(),
		middlewares.NewPathGuard(),
	)

	opts.handlersRegistrar(e)

	var h http.Handler = e
	if opts.compress {
		gzipWrap, err := gziphandler.NewGzipLevelAndMinSize(gzip.DefaultCompression, gziphandler.DefaultMinSize)
		if err != nil {
			return nil, fmt.Errorf("create gzip handler: %v", err)
		}
		h = gzipWrap(h)
	}

	s := &Server{
		lg:             opts.logger,
		maxConnections: opts.maxConnections,
		openConns:      atomic.NewInt64(0),
	}
	s.srv = &http.Server{
		Addr:              opts.addr,
		Handler:           h,
		ReadHeaderTimeout: opts.readHeaderTimeout,
		IdleTimeout:       opts.idleTimeout,
		ErrorLog:          zap.NewStdLog(opts.logger.Named("http")),
		ConnState:         s.trackConn,
	}

	return s, nil
}

// Handler returns the whole request handling stack.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// OpenConnections returns the number of connections that are not closed yet.
func (s *Server) OpenConnections() int64 {
	return s.openConns.Load()
}

// Listen binds the server address. The returned error is always a *BindError.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, &BindError{Addr: s.srv.Addr, Err: err}
	}

	if s.maxConnections > 0 {
		ln = netutil.LimitListener(ln, s.maxConnections)
	}
	return ln, nil
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.lg.Info("shutdown", zap.Int64("open_connections", s.openConns.Load()))
		err := s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
		if !errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		// Connections that never sent a request (browser preconnects) are not idle
		// for Shutdown until ReadHeaderTimeout passes.
		s.lg.Warn("graceful shutdown timed out, closing connections",
			zap.Int64("open_connections", s.openConns.Load()))
		if err := s.srv.Close(); err != nil {
			s.lg.Warn("close server", zap.Error(err))
		}
		return nil
	})

	eg.Go(func() error {
		s.lg.Info("listen and serve", zap.Stringer("addr", ln.Addr()))

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	return eg.Wait()
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) trackConn(_ net.Conn, state http.ConnState) {
	switch state { //nolint:exhaustive
	case http.StateNew:
		s.openConns.Inc()
	case http.StateHijacked, http.StateClosed:
		s.openConns.Dec()
	}
}
