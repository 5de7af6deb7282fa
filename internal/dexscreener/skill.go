package dexscreener

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"defiskills/internal/model"
	"defiskills/internal/storage"
)

const errFetch = "Error fetching token data from DexScreener: "

// Searcher is the fetch collaborator of the liquidity skill.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Pair, error)
}

// Skill is the token liquidity metrics skill.
type Skill struct {
	searcher Searcher
	sink     storage.Storage
	logger   *zap.Logger
	now      func() time.Time
}

// NewSkill builds the skill. sink may be nil.
func NewSkill(searcher Searcher, sink storage.Storage, logger *zap.Logger) *Skill {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Skill{
		searcher: searcher,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}
}

// TokenLiquidity fetches the pairs for tokenName and aggregates them.
// Every failure is reported in the result's Error field.
func (s *Skill) TokenLiquidity(ctx context.Context, tokenName string) model.LiquidityResult {
	if tokenName == "" {
		return model.LiquidityError(errMissingToken)
	}

	pairs, err := s.searcher.Search(ctx, tokenName)
	if err != nil {
		s.logger.Warn("dexscreener search failed", zap.String("query", tokenName), zap.Error(err))
		return model.LiquidityError(errFetch + err.Error())
	}

	result := Aggregate(tokenName, pairs)
	if !result.Failed() {
		s.record(ctx, tokenName, len(pairs), result.LiquidityMetrics)
	}
	return result
}

func (s *Skill) record(ctx context.Context, query string, pairCount int, metrics *model.LiquidityMetrics) {
	if s.sink == nil {
		return
	}

	chains := make([]string, 0, len(metrics.MostActivePair))
	for chain := range metrics.MostActivePair {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	snapshot := model.LiquiditySnapshot{
		Query:              query,
		TakenAt:            s.now().UTC(),
		PairCount:          pairCount,
		MedianFDV:          metrics.MedianFDV,
		MedianMarketCap:    metrics.MedianMarketCap,
		MedianLiquidityUSD: metrics.MedianLiquidityUSD,
		Chains:             chains,
	}
	if err := s.sink.PutSnapshots(ctx, []model.LiquiditySnapshot{snapshot}); err != nil {
		s.logger.Warn("record liquidity snapshot", zap.String("query", query), zap.Error(err))
	}
}
