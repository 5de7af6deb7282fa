package model

import "time"

// LiquiditySnapshot is the persisted digest of one liquidity query.
type LiquiditySnapshot struct {
	Query              string    `json:"query"`
	TakenAt            time.Time `json:"taken_at"`
	PairCount          int       `json:"pair_count"`
	MedianFDV          float64   `json:"median_fdv"`
	MedianMarketCap    float64   `json:"median_market_cap"`
	MedianLiquidityUSD float64   `json:"median_liquidity_usd"`
	Chains             []string  `json:"chains"`
}
