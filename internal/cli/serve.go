package cli

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"MiniCatalog/internal/buildinfo"
	"MiniCatalog/internal/catalog"
	"MiniCatalog/internal/config"
	"MiniCatalog/pkg/kit"
)

type serveOptions struct {
	configPath string
}

func serveCmd(opts *serveOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the product catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), *opts)
		},
	}
}

func runServe(ctx context.Context, opts serveOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log, err := kit.NewLogger(serviceName, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("build", buildinfo.String()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &catalog.Server{Provider: catalog.NewDefaultCatalog(), Log: log}
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        serviceName,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateLimitWindow,
	})

	if err := kit.RunHTTPServer(ctx, cfg.Addr(), h, log, cfg.ShutdownTimeout); err != nil {
		log.Error("http server stopped", zap.Error(err))
		return err
	}
	log.Info("http server stopped")
	return nil
}
