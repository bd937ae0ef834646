package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/dev-server/internal/config"
	"github.com/zestagio/dev-server/internal/logger"
	serverdebug "github.com/zestagio/dev-server/internal/server-debug"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root, err := config.ExecutableDir()
	if err != nil {
		return fmt.Errorf("resolve document root: %v", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("load config: %v", err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	staticCfg := cfg.Servers.Static
	if cfg.Global.IsProduction() && staticCfg.BindAddr == "" {
		lg.Warn("serving the document root on all interfaces")
	}

	// Servers.
	srvStatic, err := initServerStatic(cfg.Global.IsProduction(), staticCfg)
	if err != nil {
		return fmt.Errorf("init static server: %v", err)
	}

	var srvDebug *serverdebug.Server
	if addr := cfg.Servers.Debug.Addr; addr != "" {
		srvDebug, err = serverdebug.New(serverdebug.NewOptions(addr, serverdebug.WithSettings(cfg)))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
	}

	ln, err := srvStatic.Listen()
	if err != nil {
		return err
	}

	fmt.Printf("Serving %s at %s\n", staticCfg.DocumentRoot, staticCfg.URL())
	fmt.Println("Press Ctrl+C to stop")

	if staticCfg.OpenBrowser {
		go func() {
			if err := open.Run(staticCfg.URL()); err != nil {
				lg.Warn("open browser", zap.Error(err))
			}
		}()
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvStatic.Serve(ctx, ln) })
	if srvDebug != nil {
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	fmt.Println("\nServer stopped")
	return nil
}
