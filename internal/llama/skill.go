// Package llama wraps the DeFi Llama fee, TVL and price endpoints as text skills.
//
// Every skill returns a display string. Upstream and input failures are
// reported inside that string rather than as Go errors.
package llama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"defiskills/internal/httpx"
)

const (
	DefaultAPIURL   = "https://api.llama.fi"
	DefaultCoinsURL = "https://coins.llama.fi"
	DefaultCurrency = "$"
)

// Skill holds the DeFi Llama clients.
type Skill struct {
	api      *httpx.Client
	coins    *httpx.Client
	currency string
	logger   *zap.Logger
}

// NewSkill builds a Skill. api serves fees and TVL, coins serves prices.
func NewSkill(api, coins *httpx.Client, currency string, logger *zap.Logger) *Skill {
	if currency == "" {
		currency = DefaultCurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Skill{
		api:      api,
		coins:    coins,
		currency: currency,
		logger:   logger,
	}
}

func (s *Skill) currencyOr(override string) string {
	if override != "" {
		return override
	}
	return s.currency
}

// fetch GETs path and parses the JSON body. On failure the second return value
// holds the user-facing error line.
func (s *Skill) fetch(ctx context.Context, client *httpx.Client, path string, params url.Values, what, subject string) (gjson.Result, string) {
	prefix := fmt.Sprintf("Error fetching %s for %s from DefiLlama: ", what, subject)

	resp, err := client.Get(ctx, path, params)
	if err != nil {
		s.logger.Warn("defillama request failed", zap.String("path", path), zap.Error(err))
		return gjson.Result{}, prefix + err.Error()
	}
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("defillama non-200", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return gjson.Result{}, fmt.Sprintf("%sHTTP %d: %s", prefix, resp.StatusCode, resp.Body)
	}
	if !gjson.ValidBytes(resp.Body) {
		return gjson.Result{}, prefix + "invalid JSON response"
	}
	return gjson.ParseBytes(resp.Body), ""
}

func boolParam(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
