package model

// ChainPick is the best-matching pair selected for one chain.
type ChainPick struct {
	Score         float64     `json:"score"`
	FormattedPair PairSummary `json:"formatted_pair"`
}

// LiquidityMetrics holds the medians and per-chain picks for a token query.
type LiquidityMetrics struct {
	MedianFDV          float64              `json:"medianFDV"`
	MedianMarketCap    float64              `json:"medianMarketCap"`
	MedianLiquidityUSD float64              `json:"medianLiquidityUsd"`
	MostActivePair     map[string]ChainPick `json:"mostActivePair"`
}

// LiquidityResult is either a set of metrics or an error message.
// A nil Metrics pointer drops the metric keys from the JSON encoding.
type LiquidityResult struct {
	*LiquidityMetrics
	Error string `json:"error,omitempty"`
}

// LiquidityError builds an error-only result.
func LiquidityError(msg string) LiquidityResult {
	return LiquidityResult{Error: msg}
}

// Failed reports whether the result carries an error instead of metrics.
func (r LiquidityResult) Failed() bool {
	return r.Error != ""
}
