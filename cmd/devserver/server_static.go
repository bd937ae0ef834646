package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/zestagio/dev-server/internal/config"
	"github.com/zestagio/dev-server/internal/fileserver"
	"github.com/zestagio/dev-server/internal/server"
	"github.com/zestagio/dev-server/internal/server/errhandler"
)

const nameServerStatic = "server-static"

func initServerStatic(productionMode bool, cfg config.StaticServerConfig) (*server.Server, error) {
	lg := zap.L().Named(nameServerStatic)

	httpErrorHandler, err := errhandler.New(errhandler.NewOptions(
		lg,
		productionMode,
		errhandler.ResponseBuilder,
	))
	if err != nil {
		return nil, fmt.Errorf("create http error handler: %v", err)
	}

	files, err := fileserver.New(fileserver.NewOptions(
		http.Dir(cfg.DocumentRoot),
		fileserver.WithDotfiles(cfg.ServeDotfiles),
	))
	if err != nil {
		return nil, fmt.Errorf("create file server: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		cfg.Addr(),
		files.Register,
		httpErrorHandler.Handle,
		server.WithMaxConnections(cfg.MaxConnections),
		server.WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
		server.WithIdleTimeout(cfg.IdleTimeout),
		server.WithCompress(cfg.Compress),
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
