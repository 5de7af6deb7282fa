// Package dexscreener queries DexScreener and summarizes token liquidity.
package dexscreener

import (
	"context"
	"fmt"
	"net/url"

	"defiskills/internal/httpx"
	"defiskills/internal/model"
)

// DefaultBaseURL is the public DexScreener API.
const DefaultBaseURL = "https://api.dexscreener.com"

// Client searches DexScreener pairs.
type Client struct {
	http *httpx.Client
}

// NewClient wraps an httpx client pointed at the DexScreener API.
func NewClient(httpClient *httpx.Client) *Client {
	return &Client{http: httpClient}
}

// Search returns the pairs matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]model.Pair, error) {
	resp, err := c.http.Get(ctx, "/latest/dex/search", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	if err := httpx.Expect(resp); err != nil {
		return nil, err
	}

	pairs, err := ParsePairs(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	return pairs, nil
}
