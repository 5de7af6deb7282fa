package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "defiskills",
		Short:        "DeFi data and social skills for agents",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Duration("timeout", 0, "upstream request timeout (default 30s)")
	flags.String("llama-api-url", "", "DeFi Llama API base URL")
	flags.String("llama-coins-url", "", "DeFi Llama coins API base URL")
	flags.String("dexscreener-url", "", "DexScreener API base URL")
	flags.String("twitter-api-url", "", "X API base URL")
	flags.String("currency", "", "currency symbol prefixed to amounts (default $)")

	root.AddCommand(
		newFeesCmd(),
		newProtocolFeesCmd(),
		newCoinChangeCmd(),
		newTVLCmd(),
		newLiquidityCmd(),
		newHistoryCmd(),
		newTweetCmd(),
		newToolsCmd(),
		newServeCmd(),
	)
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
