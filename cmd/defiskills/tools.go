package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"defiskills/internal/tools"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the registered tools or export their definitions",
		Args:  cobra.NoArgs,
		RunE:  runTools,
	}
	cmd.Flags().String("format", "table", "output format: table, json or anthropic")
	cmd.Flags().StringSlice("only", nil, "restrict to these tool names (comma-separated)")
	return cmd
}

func runTools(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	registry, closeRegistry, err := buildRegistry(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeRegistry()

	only, _ := cmd.Flags().GetStringSlice("only")
	filter := func(tools.Tool) bool { return true }
	if len(only) > 0 {
		filter = tools.FilterByNames(only...)
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "anthropic":
		return writeJSON(out, registry.ToAPIToolsFiltered(filter))
	case "json":
		defs := []map[string]interface{}{}
		for _, tool := range registry.List() {
			if !filter(tool) {
				continue
			}
			defs = append(defs, map[string]interface{}{
				"name":        tool.Name(),
				"description": tool.Description(),
				"schema":      tool.Schema().JSON(),
			})
		}
		return writeJSON(out, defs)
	case "table":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tREQUIRED")
		for _, tool := range registry.List() {
			if !filter(tool) {
				continue
			}
			fmt.Fprintf(tw, "%s\t%v\n", tool.Name(), tool.Schema().Required)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
