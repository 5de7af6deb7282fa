package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"defiskills/internal/llama"
)

func newFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees <chain>",
		Short: "Show fees and revenue of a chain from DeFi Llama",
		Args:  cobra.ExactArgs(1),
		RunE:  runFees,
	}
	cmd.Flags().Bool("exclude-total-data-chart", true, "exclude the aggregated chart")
	cmd.Flags().Bool("exclude-total-data-chart-breakdown", true, "exclude the broken down chart")
	cmd.Flags().String("data-type", "dailyFees", "metric to summarize (dailyFees, dailyRevenue, ...); empty omits it")
	return cmd
}

func runFees(cmd *cobra.Command, args []string) error {
	req := llama.NewChainFeesRequest(args[0])
	req.ExcludeTotalDataChart, _ = cmd.Flags().GetBool("exclude-total-data-chart")
	req.ExcludeTotalDataChartBreakdown, _ = cmd.Flags().GetBool("exclude-total-data-chart-breakdown")
	req.DataType, _ = cmd.Flags().GetString("data-type")

	return runLlama(cmd, func(ctx context.Context, skill *llama.Skill) string {
		return skill.ChainFees(ctx, req)
	})
}

func newProtocolFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol-fees <protocol>",
		Short: "Show the fee summary of a protocol from DeFi Llama",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataType, _ := cmd.Flags().GetString("data-type")
			req := llama.ProtocolFeesRequest{Protocol: args[0], DataType: dataType}
			return runLlama(cmd, func(ctx context.Context, skill *llama.Skill) string {
				return skill.ProtocolFees(ctx, req)
			})
		},
	}
	cmd.Flags().String("data-type", "dailyFees", "metric to summarize (dailyFees, dailyRevenue, ...)")
	return cmd
}

func newCoinChangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coin-change <chain> <contract-address>",
		Short: "Show the price change of a token over a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := llama.CoinChangeRequest{Chain: args[0], ContractAddress: args[1]}
			req.LookForward, _ = cmd.Flags().GetBool("look-forward")
			req.Period, _ = cmd.Flags().GetString("period")
			return runLlama(cmd, func(ctx context.Context, skill *llama.Skill) string {
				return skill.CoinPercentageChange(ctx, req)
			})
		},
	}
	cmd.Flags().Bool("look-forward", false, "measure forward from the period start")
	cmd.Flags().String("period", "24h", "window duration (e.g. 24h, 7d)")
	return cmd
}

func newTVLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tvl <protocol>",
		Short: "Show the current TVL of a protocol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := llama.ProtocolTVLRequest{Protocol: args[0]}
			return runLlama(cmd, func(ctx context.Context, skill *llama.Skill) string {
				return skill.ProtocolTVL(ctx, req)
			})
		},
	}
}

func runLlama(cmd *cobra.Command, call func(ctx context.Context, skill *llama.Skill) string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := call(ctx, newLlamaSkill(cfg, logger))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
