package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"defiskills/internal/storage/postgres"
)

func newLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity <token-name>",
		Short: "Aggregate DexScreener liquidity metrics for a token",
		Args:  cobra.ExactArgs(1),
		RunE:  runLiquidity,
	}
	cmd.Flags().String("out", "", "append a snapshot of each result to this JSONL file")
	cmd.Flags().String("pg-dsn", "", "store a snapshot of each result in Postgres")
	return cmd
}

func runLiquidity(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	skill, closeSink, err := newDexSkill(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	result := skill.TokenLiquidity(ctx, args[0])
	if result.Failed() {
		logger.Warn("liquidity metrics unavailable", zap.String("token", args[0]), zap.String("error", result.Error))
	}
	return writeJSON(cmd.OutOrStdout(), result)
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <token-name>",
		Short: "List stored liquidity snapshots of a token, newest first",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistory,
	}
	cmd.Flags().String("pg-dsn", "", "Postgres DSN")
	cmd.Flags().Int("limit", 10, "maximum number of snapshots")
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	snapshots, err := store.RecentSnapshots(ctx, args[0], limit)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), snapshots)
}
