// Package twitter exposes a small set of X (Twitter) account actions as named
// plugin functions.
package twitter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"defiskills/internal/model"
)

const (
	DefaultID          = "twitter_plugin"
	DefaultName        = "Twitter Plugin"
	DefaultDescription = "A plugin that executes tasks within Twitter, capable of posting, replying, quoting, and liking tweets, and getting metrics."
)

// Function names, in registration order.
const (
	FnGetMetrics     = "get_metrics"
	FnReplyTweet     = "reply_tweet"
	FnReplyTweetLong = "reply_tweet_long"
	FnPostTweet      = "post_tweet"
	FnLikeTweet      = "like_tweet"
	FnQuoteTweet     = "quote_tweet"
)

// Options configures a Plugin. Empty fields take the package defaults.
type Options struct {
	ID          string
	Name        string
	Description string
	Credentials Credentials
	BaseURL     string
	Timeout     time.Duration
}

// Params carries the arguments of a plugin function. Each function reads only
// the fields it needs.
type Params struct {
	TweetID string
	Text    string
	Replies []string
}

// Function is a plugin action resolved by name.
type Function func(ctx context.Context, p Params) (interface{}, error)

type entry struct {
	name string
	fn   Function
}

// Plugin binds the account actions to an authenticated client.
type Plugin struct {
	ID          string
	Name        string
	Description string

	client    *Client
	logger    *zap.Logger
	functions []entry
}

// NewPlugin validates the credentials and builds the function table.
func NewPlugin(opts Options, logger *zap.Logger) (*Plugin, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := NewClient(opts.BaseURL, opts.Credentials, opts.Timeout, logger)
	if err != nil {
		return nil, err
	}

	p := &Plugin{
		ID:          valueOr(opts.ID, DefaultID),
		Name:        valueOr(opts.Name, DefaultName),
		Description: valueOr(opts.Description, DefaultDescription),
		client:      client,
		logger:      logger.With(zap.String("plugin", valueOr(opts.ID, DefaultID))),
	}
	p.functions = []entry{
		{FnGetMetrics, func(ctx context.Context, _ Params) (interface{}, error) { return p.GetMetrics(ctx) }},
		{FnReplyTweet, func(ctx context.Context, a Params) (interface{}, error) { return p.ReplyTweet(ctx, a.TweetID, a.Text) }},
		{FnReplyTweetLong, func(ctx context.Context, a Params) (interface{}, error) {
			return p.ReplyTweetLong(ctx, a.TweetID, a.Replies)
		}},
		{FnPostTweet, func(ctx context.Context, a Params) (interface{}, error) { return p.PostTweet(ctx, a.Text) }},
		{FnLikeTweet, func(ctx context.Context, a Params) (interface{}, error) { return nil, p.LikeTweet(ctx, a.TweetID) }},
		{FnQuoteTweet, func(ctx context.Context, a Params) (interface{}, error) { return p.QuoteTweet(ctx, a.TweetID, a.Text) }},
	}
	return p, nil
}

// AvailableFunctions lists the function names in registration order.
func (p *Plugin) AvailableFunctions() []string {
	names := make([]string, 0, len(p.functions))
	for _, e := range p.functions {
		names = append(names, e.name)
	}
	return names
}

// GetFunction resolves a function by name.
func (p *Plugin) GetFunction(name string) (Function, error) {
	for _, e := range p.functions {
		if e.name == name {
			return e.fn, nil
		}
	}
	return nil, fmt.Errorf("function '%s' not found. Available functions: %s", name, strings.Join(p.AvailableFunctions(), ", "))
}

// GetMetrics returns the follower, following and tweet counts of the account.
// On failure the metrics are zero.
func (p *Plugin) GetMetrics(ctx context.Context) (model.AccountMetrics, error) {
	_, metrics, err := p.client.Me(ctx)
	if err != nil {
		p.logger.Error("failed to fetch metrics", zap.Error(err))
		return model.AccountMetrics{}, err
	}
	return metrics, nil
}

// ReplyTweet replies to tweetID.
func (p *Plugin) ReplyTweet(ctx context.Context, tweetID, reply string) (model.Tweet, error) {
	tweet, err := p.client.CreateTweet(ctx, TweetRequest{Text: reply, InReplyToTweetID: tweetID})
	if err != nil {
		p.logger.Error("failed to reply to tweet", zap.String("tweet_id", tweetID), zap.Error(err))
		return model.Tweet{}, err
	}
	p.logger.Info("replied to tweet", zap.String("tweet_id", tweetID))
	return tweet, nil
}

// ReplyTweetLong posts replies as a thread: each reply answers the previous
// one, starting from tweetID. It stops early when a response carries no id.
func (p *Plugin) ReplyTweetLong(ctx context.Context, tweetID string, replies []string) ([]model.Tweet, error) {
	posted := make([]model.Tweet, 0, len(replies))
	previous := tweetID
	for _, reply := range replies {
		tweet, err := p.client.CreateTweet(ctx, TweetRequest{Text: reply, InReplyToTweetID: previous})
		if err != nil {
			p.logger.Error("failed to reply to tweet", zap.String("tweet_id", tweetID), zap.Int("posted", len(posted)), zap.Error(err))
			return posted, err
		}
		if tweet.ID == "" {
			return posted, nil
		}
		posted = append(posted, tweet)
		previous = tweet.ID
	}
	p.logger.Info("replied to tweet with thread", zap.String("tweet_id", tweetID), zap.Int("posted", len(posted)))
	return posted, nil
}

// PostTweet posts a standalone tweet.
func (p *Plugin) PostTweet(ctx context.Context, text string) (model.Tweet, error) {
	tweet, err := p.client.CreateTweet(ctx, TweetRequest{Text: text})
	if err != nil {
		p.logger.Error("failed to post tweet", zap.Error(err))
		return model.Tweet{}, err
	}
	p.logger.Info("tweet posted", zap.String("id", tweet.ID))
	return tweet, nil
}

// LikeTweet likes tweetID.
func (p *Plugin) LikeTweet(ctx context.Context, tweetID string) error {
	if err := p.client.Like(ctx, tweetID); err != nil {
		p.logger.Error("failed to like tweet", zap.String("tweet_id", tweetID), zap.Error(err))
		return err
	}
	p.logger.Info("tweet liked", zap.String("tweet_id", tweetID))
	return nil
}

// QuoteTweet quotes tweetID with text.
func (p *Plugin) QuoteTweet(ctx context.Context, tweetID, quote string) (model.Tweet, error) {
	tweet, err := p.client.CreateTweet(ctx, TweetRequest{Text: quote, QuoteTweetID: tweetID})
	if err != nil {
		p.logger.Error("failed to quote tweet", zap.String("tweet_id", tweetID), zap.Error(err))
		return model.Tweet{}, err
	}
	p.logger.Info("quoted tweet", zap.String("tweet_id", tweetID))
	return tweet, nil
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
