package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yndnr/numera-go/internal/core/service"
	"github.com/yndnr/numera-go/internal/infra/buildinfo"
	"github.com/yndnr/numera-go/internal/infra/confloader"
	"github.com/yndnr/numera-go/internal/infra/shutdown"
	"github.com/yndnr/numera-go/internal/server/config"
	"github.com/yndnr/numera-go/internal/server/httpserver"
	"github.com/yndnr/numera-go/internal/server/localserver"
	"github.com/yndnr/numera-go/internal/telemetry/logger"
	"github.com/yndnr/numera-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("numera-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	slogLogger := log.Slog()

	info := buildinfo.Get()
	log.Info("starting numera-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", *configFile)
	log.Debug("effective configuration", "config", config.Sanitize(cfg))

	var registry *metric.Registry
	if cfg.Server.Metrics.Enabled {
		registry = metric.NewRegistry()
	}

	routerCfg := &httpserver.RouterConfig{
		Logger:             slogLogger,
		CORSAllowedOrigins: cfg.Server.HTTP.CORSAllowedOrigins,
		GlobalRateLimit:    cfg.Server.HTTP.RateLimit,
		EnableAudit:        cfg.Server.HTTP.EnableAudit,
	}
	if registry != nil {
		routerCfg.Metrics = registry
		routerCfg.MetricsAuthToken = cfg.Server.Metrics.AuthToken
		routerCfg.Calculator = service.NewCalculatorService(registry)
	} else {
		routerCfg.Calculator = service.NewCalculatorService(nil)
	}

	opts := []httpserver.Option{
		httpserver.WithReadHeaderTimeout(cfg.Server.HTTP.ReadHeaderTimeout),
		httpserver.WithErrorLogger(slogLogger),
	}
	if cfg.Server.HTTP.TLSEnabled() {
		opts = append(opts, httpserver.WithTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile))
	}
	router := httpserver.NewRouter(routerCfg)
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router, opts...)

	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout)
	shutdownHandler.SetLogger(slogLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Registered first so it runs last.
	shutdownHandler.OnShutdown("http", func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if cfg.Server.Local.Enabled() {
		localServer := localserver.New(cfg.Server.Local.SocketPath, router,
			httpserver.WithReadHeaderTimeout(cfg.Server.HTTP.ReadHeaderTimeout),
			httpserver.WithErrorLogger(slogLogger))
		if err := localServer.Listen(); err != nil {
			return err
		}
		shutdownHandler.OnShutdown("local", func(ctx context.Context) error {
			log.Info("shutting down local socket server")
			return localServer.Shutdown(ctx)
		})

		go func() {
			log.Info("local socket server listening", "path", localServer.Path())
			if err := localServer.Serve(); err != nil {
				log.Error("local socket server error", "error", err)
				cancel()
			}
		}()
	}

	if *configFile != "" {
		watcher, err := watchConfig(*configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown("config-watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening",
			"addr", cfg.Server.HTTP.Addr,
			"tls", cfg.Server.HTTP.TLSEnabled())
		if err := httpServer.ListenAndServe(); err != nil {
			log.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initLogger initializes the structured logger and installs it as default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// watchConfig re-reads the config file on change and applies the log
// level. Other settings need a restart.
func watchConfig(path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload rejected", "error", err)
			return
		}
		if level := strings.ToLower(cfg.Log.Level); level != logger.GetLevel() {
			logger.SetLevel(level)
			log.Info("log level changed", "level", level)
		}
	})
	watcher.StartAsync()
	return watcher, nil
}
