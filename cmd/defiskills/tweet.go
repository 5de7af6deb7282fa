package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"defiskills/internal/twitter"
)

func newTweetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tweet <function>",
		Short: "Run a Twitter plugin function (get_metrics, reply_tweet, reply_tweet_long, post_tweet, like_tweet, quote_tweet)",
		Args:  cobra.ExactArgs(1),
		RunE:  runTweet,
	}
	cmd.Flags().String("tweet-id", "", "target tweet id")
	cmd.Flags().String("text", "", "tweet, reply or quote text")
	cmd.Flags().StringArray("reply", nil, "thread message for reply_tweet_long (repeatable)")
	return cmd
}

func runTweet(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	plugin, err := newTwitterPlugin(cfg, logger)
	if err != nil {
		return err
	}
	fn, err := plugin.GetFunction(args[0])
	if err != nil {
		return err
	}

	var params twitter.Params
	params.TweetID, _ = cmd.Flags().GetString("tweet-id")
	params.Text, _ = cmd.Flags().GetString("text")
	params.Replies, _ = cmd.Flags().GetStringArray("reply")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := fn(ctx, params)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if result == nil {
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), result)
}
