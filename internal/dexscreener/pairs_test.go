package dexscreener

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchFixture = `{
  "schemaVersion": "1.0.0",
  "pairs": [
    {
      "chainId": "ethereum",
      "fdv": 100,
      "marketCap": 200.5,
      "liquidity": {"usd": 50, "base": 1, "quote": 2},
      "info": {"imageUrl": "https://example.com/p.png"},
      "baseToken": {"address": "0x1", "name": "Pepe", "symbol": "PEPE"}
    },
    {
      "chainId": "solana",
      "fdv": "300",
      "marketCap": null,
      "liquidity": null,
      "baseToken": {"name": 7}
    },
    {
      "chainId": "bsc",
      "fdv": true
    },
    "not-an-object"
  ]
}`

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs([]byte(searchFixture))
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	first := pairs[0]
	assert.Equal(t, "ethereum", first.ChainID)
	assert.Equal(t, "Pepe", first.BaseTokenName)
	require.NotNil(t, first.FDV)
	assert.Equal(t, 100.0, *first.FDV)
	require.NotNil(t, first.MarketCap)
	assert.Equal(t, 200.5, *first.MarketCap)
	require.NotNil(t, first.LiquidityUSD)
	assert.Equal(t, 50.0, *first.LiquidityUSD)
	assert.JSONEq(t, `{"usd": 50, "base": 1, "quote": 2}`, string(first.Liquidity))

	second := pairs[1]
	assert.Nil(t, second.FDV, "string fdv is not numeric")
	assert.Nil(t, second.MarketCap)
	assert.Nil(t, second.LiquidityUSD)
	assert.Empty(t, second.BaseTokenName)
	assert.Equal(t, `"300"`, string(second.RawFDV))
	assert.Equal(t, "null", string(second.Liquidity))
	assert.Nil(t, second.Info)

	third := pairs[2]
	assert.Nil(t, third.FDV, "boolean fdv is not numeric")
}

func TestParsePairsOutOfRangeNumberIsAbsent(t *testing.T) {
	pairs, err := ParsePairs([]byte(`{"pairs":[
		{"chainId":"a","fdv":1e400,"marketCap":-1e400,"liquidity":{"usd":10},"baseToken":{"name":"Pepe"}},
		{"chainId":"a","fdv":30,"baseToken":{"name":"Pepe"}}
	]}`))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[0].FDV)
	assert.Nil(t, pairs[0].MarketCap)
	require.NotNil(t, pairs[0].LiquidityUSD)

	result := Aggregate("pepe", pairs)
	require.False(t, result.Failed())
	assert.Equal(t, 30.0, result.MedianFDV)
	assert.Equal(t, 0.0, result.MedianMarketCap)

	_, err = json.Marshal(result)
	assert.NoError(t, err)
}

func TestParsePairsMissingKey(t *testing.T) {
	pairs, err := ParsePairs([]byte(`{"schemaVersion":"1.0.0","pairs":null}`))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestParsePairsInvalidJSON(t *testing.T) {
	_, err := ParsePairs([]byte(`<html>`))
	assert.Error(t, err)
}
