package dexscreener

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defiskills/internal/model"
)

func f(v float64) *float64 { return &v }

func namedPair(chain, name, info string) model.Pair {
	return model.Pair{
		ChainID:       chain,
		BaseTokenName: name,
		BaseToken:     json.RawMessage(`{"name":"` + name + `"}`),
		Info:          json.RawMessage(info),
	}
}

func TestAggregateMissingToken(t *testing.T) {
	result := Aggregate("", []model.Pair{{FDV: f(1)}})

	assert.Equal(t, "No token address was provided.", result.Error)
	assert.Nil(t, result.LiquidityMetrics)
}

func TestAggregateNoPairs(t *testing.T) {
	result := Aggregate("pepe", nil)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No pair data found for token address: pepe"}`, string(data))
}

func TestAggregateSinglePair(t *testing.T) {
	result := Aggregate("pepe", []model.Pair{{
		ChainID:       "ethereum",
		BaseTokenName: "Pepe",
		FDV:           f(100),
		MarketCap:     f(200),
		LiquidityUSD:  f(50),
	}})

	require.False(t, result.Failed())
	assert.Equal(t, 100.0, result.MedianFDV)
	assert.Equal(t, 200.0, result.MedianMarketCap)
	assert.Equal(t, 50.0, result.MedianLiquidityUSD)
	require.Contains(t, result.MostActivePair, "ethereum")
	assert.Equal(t, 100.0, result.MostActivePair["ethereum"].Score)
}

func TestAggregateMedianOverThree(t *testing.T) {
	pairs := []model.Pair{
		{ChainID: "a", FDV: f(30)},
		{ChainID: "a", FDV: f(10)},
		{ChainID: "b", FDV: f(20)},
	}

	result := Aggregate("pepe", pairs)
	assert.Equal(t, 20.0, result.MedianFDV)
}

func TestAggregateAbsentFieldsYieldZero(t *testing.T) {
	pairs := []model.Pair{
		{ChainID: "a", BaseTokenName: "x"},
		{ChainID: "b", BaseTokenName: "y"},
	}

	result := Aggregate("pepe", pairs)

	require.False(t, result.Failed())
	assert.Zero(t, result.MedianFDV)
	assert.Zero(t, result.MedianMarketCap)
	assert.Zero(t, result.MedianLiquidityUSD)
	assert.Nil(t, result.MostActivePair, "zero-score pairs are never selected")
}

func TestAggregateFieldsAreIndependent(t *testing.T) {
	pairs := []model.Pair{
		{FDV: f(10), MarketCap: f(0)},
		{FDV: f(20)},
		{LiquidityUSD: f(7)},
	}

	result := Aggregate("pepe", pairs)

	assert.Equal(t, 15.0, result.MedianFDV)
	assert.Equal(t, 0.0, result.MedianMarketCap)
	assert.Equal(t, 7.0, result.MedianLiquidityUSD)
}

func TestAggregateHigherScoreReplaces(t *testing.T) {
	pairs := []model.Pair{
		namedPair("solana", "pepecoin", `{"id":1}`),
		namedPair("solana", "Pepe", `{"id":2}`),
	}

	result := Aggregate("PEPE", pairs)

	pick := result.MostActivePair["solana"]
	assert.Equal(t, 100.0, pick.Score)
	assert.JSONEq(t, `{"id":2}`, string(pick.FormattedPair.Info))
}

func TestAggregateTieKeepsFirstSeen(t *testing.T) {
	pairs := []model.Pair{
		namedPair("solana", "pepe", `{"id":1}`),
		namedPair("solana", "pepe", `{"id":2}`),
		namedPair("base", "pepecoin", `{"id":3}`),
	}

	result := Aggregate("pepe", pairs)

	require.Len(t, result.MostActivePair, 2)
	assert.JSONEq(t, `{"id":1}`, string(result.MostActivePair["solana"].FormattedPair.Info))
	assert.InDelta(t, 100*8.0/12.0, result.MostActivePair["base"].Score, 1e-9)
}

func TestAggregateLowerLaterScoreIgnored(t *testing.T) {
	pairs := []model.Pair{
		namedPair("bsc", "pepe", `{"id":1}`),
		namedPair("bsc", "pepecoin", `{"id":2}`),
	}

	result := Aggregate("pepe", pairs)
	assert.JSONEq(t, `{"id":1}`, string(result.MostActivePair["bsc"].FormattedPair.Info))
}
