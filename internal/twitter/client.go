package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"defiskills/internal/httpx"
	"defiskills/internal/model"
)

const DefaultBaseURL = "https://api.twitter.com"

var errMissingCredentials = errors.New("twitter API credentials are required")

// Credentials are OAuth1 user-context keys.
type Credentials struct {
	APIKey            string
	APISecretKey      string
	AccessToken       string
	AccessTokenSecret string
}

// Complete reports whether every key is set.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.APISecretKey != "" && c.AccessToken != "" && c.AccessTokenSecret != ""
}

// TweetRequest is the body of POST /2/tweets. Empty ids are omitted.
type TweetRequest struct {
	Text             string
	InReplyToTweetID string
	QuoteTweetID     string
}

// Client talks to the X API v2 on behalf of a single user.
type Client struct {
	http *httpx.Client

	mu     sync.Mutex
	userID string
}

// NewClient builds an OAuth1-signing client for baseURL.
func NewClient(baseURL string, creds Credentials, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if !creds.Complete() {
		return nil, errMissingCredentials
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := oauth1.NewConfig(creds.APIKey, creds.APISecretKey).
		Client(context.Background(), oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret))
	if timeout > 0 {
		httpClient.Timeout = timeout
	}

	return &Client{
		http: httpx.New(httpx.Config{
			BaseURL:    baseURL,
			HTTPClient: httpClient,
			Logger:     logger,
		}),
	}, nil
}

// Me returns the authenticated user's id and public metrics.
func (c *Client) Me(ctx context.Context) (string, model.AccountMetrics, error) {
	resp, err := c.http.Get(ctx, "/2/users/me", url.Values{"user.fields": {"public_metrics"}})
	if err != nil {
		return "", model.AccountMetrics{}, fmt.Errorf("get me: %w", err)
	}
	if err := httpx.Expect(resp); err != nil {
		return "", model.AccountMetrics{}, fmt.Errorf("get me: %w", err)
	}

	data := gjson.GetBytes(resp.Body, "data")
	if !data.IsObject() {
		return "", model.AccountMetrics{}, errors.New("get me: response has no user data")
	}

	metrics := data.Get("public_metrics")
	return data.Get("id").String(), model.AccountMetrics{
		Followers: metrics.Get("followers_count").Int(),
		Following: metrics.Get("following_count").Int(),
		Tweets:    metrics.Get("tweet_count").Int(),
	}, nil
}

// CreateTweet posts a tweet, reply or quote. The returned tweet has an empty
// ID when the response carried none.
func (c *Client) CreateTweet(ctx context.Context, req TweetRequest) (model.Tweet, error) {
	body := map[string]interface{}{"text": req.Text}
	if req.InReplyToTweetID != "" {
		body["reply"] = map[string]string{"in_reply_to_tweet_id": req.InReplyToTweetID}
	}
	if req.QuoteTweetID != "" {
		body["quote_tweet_id"] = req.QuoteTweetID
	}

	resp, err := c.http.PostJSON(ctx, "/2/tweets", body)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("create tweet: %w", err)
	}
	if err := httpx.Expect(resp); err != nil {
		return model.Tweet{}, fmt.Errorf("create tweet: %w", err)
	}

	data := gjson.GetBytes(resp.Body, "data")
	return model.Tweet{
		ID:   data.Get("id").String(),
		Text: data.Get("text").String(),
	}, nil
}

// Like likes tweetID as the authenticated user.
func (c *Client) Like(ctx context.Context, tweetID string) error {
	userID, err := c.currentUserID(ctx)
	if err != nil {
		return err
	}

	resp, err := c.http.PostJSON(ctx, "/2/users/"+httpx.PathSegment(userID)+"/likes", map[string]string{"tweet_id": tweetID})
	if err != nil {
		return fmt.Errorf("like tweet: %w", err)
	}
	if err := httpx.Expect(resp); err != nil {
		return fmt.Errorf("like tweet: %w", err)
	}
	return nil
}

func (c *Client) currentUserID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.userID != "" {
		return c.userID, nil
	}
	id, _, err := c.Me(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New("get me: response has no user id")
	}
	c.userID = id
	return id, nil
}
