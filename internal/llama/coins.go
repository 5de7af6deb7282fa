package llama

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"github.com/tidwall/gjson"

	"defiskills/internal/httpx"
)

const defaultPeriod = "24h"

var evmChains = map[string]struct{}{
	"ethereum": {}, "bsc": {}, "polygon": {}, "arbitrum": {}, "optimism": {}, "base": {},
	"avax": {}, "fantom": {}, "linea": {}, "scroll": {}, "blast": {}, "era": {},
	"xdai": {}, "celo": {}, "cronos": {}, "moonbeam": {}, "mantle": {}, "polygon_zkevm": {},
}

// CoinChangeRequest parameterizes the coin percentage change lookup.
type CoinChangeRequest struct {
	Chain           string
	ContractAddress string
	LookForward     bool
	// Period defaults to 24h.
	Period string
}

// CoinID returns the chain:address identifier DeFi Llama keys prices by.
func (r CoinChangeRequest) CoinID() string {
	return r.Chain + ":" + r.ContractAddress
}

// ValidateCoin checks the address format for chains with a known address scheme.
// Unknown chains are accepted as is.
func ValidateCoin(chain, address string) error {
	chain = strings.ToLower(chain)
	if _, ok := evmChains[chain]; ok {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("invalid contract address for %s: %s", chain, address)
		}
		return nil
	}
	if chain == "solana" {
		decoded, err := base58.Decode(address)
		if err != nil || len(decoded) != 32 {
			return fmt.Errorf("invalid contract address for %s: %s", chain, address)
		}
	}
	return nil
}

// CoinPercentageChange reports the price change of a token over a period.
func (s *Skill) CoinPercentageChange(ctx context.Context, req CoinChangeRequest) string {
	if req.Chain == "" || req.ContractAddress == "" {
		return "Error: Coin parameter is required."
	}
	if err := ValidateCoin(req.Chain, req.ContractAddress); err != nil {
		return "Error: " + err.Error()
	}

	period := req.Period
	if period == "" {
		period = defaultPeriod
	}

	coin := req.CoinID()
	params := url.Values{}
	params.Set("lookForward", boolParam(req.LookForward))
	params.Set("period", period)

	data, errMsg := s.fetch(ctx, s.coins, "/percentage/"+httpx.PathSegment(coin), params, "% change", coin)
	if errMsg != "" {
		return errMsg
	}

	change, ok := data.Get("coins").Map()[coin]
	if !ok || change.Type == gjson.Null {
		return "Coin percentage change not available"
	}

	return fmt.Sprintf("Coin: %s\nPercentage Change (%s): %s%%\n", coin, period, display(change))
}
