package dexscreener

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"defiskills/internal/model"
)

// ParsePairs extracts the pair list from a search response body.
// A missing or non-array "pairs" key yields an empty list.
func ParsePairs(body []byte) ([]model.Pair, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}

	list := gjson.GetBytes(body, "pairs")
	if !list.IsArray() {
		return nil, nil
	}

	var pairs []model.Pair
	list.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			pairs = append(pairs, parsePair(value))
		}
		return true
	})
	return pairs, nil
}

func parsePair(value gjson.Result) model.Pair {
	pair := model.Pair{
		FDV:          number(value.Get("fdv")),
		MarketCap:    number(value.Get("marketCap")),
		LiquidityUSD: number(value.Get("liquidity.usd")),
		RawFDV:       raw(value.Get("fdv")),
		RawMarketCap: raw(value.Get("marketCap")),
		Liquidity:    raw(value.Get("liquidity")),
		Info:         raw(value.Get("info")),
		BaseToken:    raw(value.Get("baseToken")),
	}

	if chain := value.Get("chainId"); chain.Type == gjson.String {
		pair.ChainID = chain.Str
	}
	if name := value.Get("baseToken.name"); name.Type == gjson.String {
		pair.BaseTokenName = name.Str
	}
	return pair
}

// number keeps finite JSON numbers only; strings, booleans, null and values
// outside float64 range are absent.
func number(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Float()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func raw(r gjson.Result) json.RawMessage {
	if !r.Exists() {
		return nil
	}
	return json.RawMessage(r.Raw)
}
