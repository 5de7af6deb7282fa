package dexscreener

import (
	"fmt"
	"strings"

	"defiskills/internal/fuzz"
	"defiskills/internal/model"
	"defiskills/internal/stats"
)

const (
	errMissingToken = "No token address was provided."
	errNoPairs      = "No pair data found for token address: %s"
)

// Aggregate computes the median metrics and the per-chain best match for a
// token query over pairs. It performs no I/O.
func Aggregate(tokenName string, pairs []model.Pair) model.LiquidityResult {
	if tokenName == "" {
		return model.LiquidityError(errMissingToken)
	}
	if len(pairs) == 0 {
		return model.LiquidityError(fmt.Sprintf(errNoPairs, tokenName))
	}

	var fdvs, caps, liquidity []float64
	query := strings.ToLower(tokenName)
	picks := make(map[string]model.ChainPick)

	for _, pair := range pairs {
		if pair.FDV != nil {
			fdvs = append(fdvs, *pair.FDV)
		}
		if pair.MarketCap != nil {
			caps = append(caps, *pair.MarketCap)
		}
		if pair.LiquidityUSD != nil {
			liquidity = append(liquidity, *pair.LiquidityUSD)
		}

		score := fuzz.Ratio(strings.ToLower(pair.BaseTokenName), query)
		// Strictly greater: a zero score never qualifies and ties keep the first pair.
		if score > picks[pair.ChainID].Score {
			picks[pair.ChainID] = model.ChainPick{
				Score:         score,
				FormattedPair: pair.Summary(),
			}
		}
	}

	metrics := &model.LiquidityMetrics{
		MedianFDV:          stats.Median(fdvs),
		MedianMarketCap:    stats.Median(caps),
		MedianLiquidityUSD: stats.Median(liquidity),
	}
	if len(picks) > 0 {
		metrics.MostActivePair = picks
	}

	return model.LiquidityResult{LiquidityMetrics: metrics}
}
