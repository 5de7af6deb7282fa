package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"defiskills/internal/config"
	"defiskills/internal/dexscreener"
	"defiskills/internal/httpx"
	"defiskills/internal/llama"
	"defiskills/internal/storage"
	"defiskills/internal/storage/postgres"
	"defiskills/internal/tools"
	"defiskills/internal/twitter"
)

func loadConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func newLlamaSkill(cfg config.Config, logger *zap.Logger) *llama.Skill {
	api := httpx.New(httpx.Config{BaseURL: cfg.LlamaAPIURL, Timeout: cfg.Timeout, Logger: logger})
	coins := httpx.New(httpx.Config{BaseURL: cfg.LlamaCoinsURL, Timeout: cfg.Timeout, Logger: logger})
	return llama.NewSkill(api, coins, cfg.Currency, logger)
}

// newSnapshotSink opens the configured snapshot sinks. The returned sink is nil
// when none is configured.
func newSnapshotSink(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Storage, func(), error) {
	var sinks storage.Multi
	closers := []func(){}

	if cfg.Out != "" {
		sinks = append(sinks, storage.NewJsonlStorage(cfg.Out))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect postgres: %w", err)
		}
		closers = append(closers, store.Close)
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, func() {}, fmt.Errorf("ensure schema: %w", err)
		}
		sinks = append(sinks, store)
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	if len(sinks) == 0 {
		return nil, closeAll, nil
	}
	logger.Debug("snapshot sinks", zap.Int("count", len(sinks)), zap.String("out", cfg.Out), zap.Bool("postgres", cfg.PGDSN != ""))
	return sinks, closeAll, nil
}

func newDexSkill(ctx context.Context, cfg config.Config, logger *zap.Logger) (*dexscreener.Skill, func(), error) {
	sink, closeSink, err := newSnapshotSink(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	client := dexscreener.NewClient(httpx.New(httpx.Config{BaseURL: cfg.DexScreenerURL, Timeout: cfg.Timeout, Logger: logger}))
	return dexscreener.NewSkill(client, sink, logger), closeSink, nil
}

func newTwitterPlugin(cfg config.Config, logger *zap.Logger) (*twitter.Plugin, error) {
	return twitter.NewPlugin(twitter.Options{
		ID:          cfg.Twitter.PluginID,
		Name:        cfg.Twitter.PluginName,
		Description: cfg.Twitter.Description,
		BaseURL:     cfg.Twitter.APIURL,
		Timeout:     cfg.Timeout,
		Credentials: twitter.Credentials{
			APIKey:            cfg.Twitter.APIKey,
			APISecretKey:      cfg.Twitter.APISecretKey,
			AccessToken:       cfg.Twitter.AccessToken,
			AccessTokenSecret: cfg.Twitter.AccessTokenSecret,
		},
	}, logger)
}

// buildRegistry registers every skill. Twitter tools are skipped when no
// credentials are configured.
func buildRegistry(ctx context.Context, cfg config.Config, logger *zap.Logger) (*tools.Registry, func(), error) {
	registry := tools.NewRegistry()
	registry.RegisterAll(tools.LlamaTools(newLlamaSkill(cfg, logger))...)

	dex, closeDex, err := newDexSkill(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	registry.Register(tools.DexScreenerTool(dex))

	if !cfg.Twitter.HasCredentials() {
		logger.Info("twitter credentials not set, twitter tools disabled")
		return registry, closeDex, nil
	}

	plugin, err := newTwitterPlugin(cfg, logger)
	if err != nil {
		closeDex()
		return nil, nil, err
	}
	twitterTools, err := tools.TwitterTools(plugin)
	if err != nil {
		closeDex()
		return nil, nil, err
	}
	registry.RegisterAll(twitterTools...)
	return registry, closeDex, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
