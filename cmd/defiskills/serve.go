package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"defiskills/internal/config"
	"defiskills/internal/server"
	"defiskills/internal/tools"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("listen", ":8080", "listen address")
	cmd.Flags().StringSlice("tools", nil, "expose only these tools (comma-separated)")
	cmd.Flags().Bool("metrics", true, "expose /metrics")
	cmd.Flags().String("out", "", "append liquidity snapshots to this JSONL file")
	cmd.Flags().String("pg-dsn", "", "store liquidity snapshots in Postgres")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, closeRegistry, err := buildRegistry(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer closeRegistry()

	if len(cfg.Tools) > 0 {
		registry = restrict(registry, cfg.Tools, logger)
	}

	srv := server.New(registry, server.Config{
		Listen:       cfg.Listen,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Metrics:      cfg.Metrics,
	}, logger)
	return srv.Run(ctx)
}

func restrict(registry *tools.Registry, names []string, logger *zap.Logger) *tools.Registry {
	out := tools.NewRegistry()
	for _, name := range names {
		tool, ok := registry.Get(name)
		if !ok {
			logger.Warn("unknown tool in allow list", zap.String("tool", name))
			continue
		}
		out.Register(tool)
	}
	return out
}
