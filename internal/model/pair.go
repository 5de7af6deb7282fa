package model

import "encoding/json"

// Pair is one trading pair returned by a DexScreener search.
//
// Numeric fields are nil unless the upstream value was a JSON number. The raw
// blobs are kept verbatim so the summary can echo them without a full schema.
type Pair struct {
	ChainID       string
	FDV           *float64
	MarketCap     *float64
	LiquidityUSD  *float64
	BaseTokenName string

	RawFDV       json.RawMessage
	RawMarketCap json.RawMessage
	Liquidity    json.RawMessage
	Info         json.RawMessage
	BaseToken    json.RawMessage
}

// PairSummary is the formatted sub-record emitted for a selected pair.
type PairSummary struct {
	Chain     string          `json:"chain"`
	FDV       json.RawMessage `json:"fdv"`
	MarketCap json.RawMessage `json:"market_cap"`
	Liquidity json.RawMessage `json:"liquidity"`
	Info      json.RawMessage `json:"info"`
	BaseToken json.RawMessage `json:"baseToken"`
}

// Summary builds the passthrough sub-record for the pair.
func (p Pair) Summary() PairSummary {
	return PairSummary{
		Chain:     p.ChainID,
		FDV:       orNull(p.RawFDV),
		MarketCap: orNull(p.RawMarketCap),
		Liquidity: orEmptyObject(p.Liquidity),
		Info:      orEmptyObject(p.Info),
		BaseToken: orEmptyObject(p.BaseToken),
	}
}

var (
	jsonNull        = json.RawMessage("null")
	jsonEmptyObject = json.RawMessage("{}")
)

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return jsonNull
	}
	return raw
}

func orEmptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return jsonEmptyObject
	}
	return raw
}
