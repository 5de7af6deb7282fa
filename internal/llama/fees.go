package llama

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"defiskills/internal/httpx"
)

const defaultDataType = "dailyFees"

// ChainFeesRequest parameterizes the chain fees overview.
type ChainFeesRequest struct {
	Chain                          string
	ExcludeTotalDataChart          bool
	ExcludeTotalDataChartBreakdown bool
	// DataType is omitted from the query when empty.
	DataType string
	Currency string
}

// NewChainFeesRequest returns a request with the default options.
func NewChainFeesRequest(chain string) ChainFeesRequest {
	return ChainFeesRequest{
		Chain:                          chain,
		ExcludeTotalDataChart:          true,
		ExcludeTotalDataChartBreakdown: true,
		DataType:                       defaultDataType,
	}
}

// ChainFees summarizes fees and revenue for a chain.
func (s *Skill) ChainFees(ctx context.Context, req ChainFeesRequest) string {
	if req.Chain == "" {
		return "Chain fee not available"
	}

	params := url.Values{}
	params.Set("excludeTotalDataChart", boolParam(req.ExcludeTotalDataChart))
	params.Set("excludeTotalDataChartBreakdown", boolParam(req.ExcludeTotalDataChartBreakdown))
	if req.DataType != "" {
		params.Set("dataType", req.DataType)
	}

	data, errMsg := s.fetch(ctx, s.api, "/overview/fees/"+httpx.PathSegment(req.Chain), params, "chain fee", req.Chain)
	if errMsg != "" {
		return errMsg
	}

	currency := s.currencyOr(req.Currency)
	var b strings.Builder
	fmt.Fprintf(&b, "Chain: %s\n", displayOr(data.Get("chain"), req.Chain))
	fmt.Fprintf(&b, "24h Fees/Revenue: %s%s\n", currency, display(data.Get("total24h")))
	fmt.Fprintf(&b, "7d Total Fees/Revenue: %s%s\n", currency, display(data.Get("total7d")))
	fmt.Fprintf(&b, "30d Total Fees/Revenue: %s%s\n", currency, display(data.Get("total30d")))
	fmt.Fprintf(&b, "1d Change: %s%%\n", display(data.Get("change_1d")))
	fmt.Fprintf(&b, "7d Change: %s%%\n", display(data.Get("change_7d")))
	fmt.Fprintf(&b, "1m Change: %s%%\n", display(data.Get("change_1m")))
	return b.String()
}

// ProtocolFeesRequest parameterizes the protocol fees summary.
type ProtocolFeesRequest struct {
	Protocol string
	DataType string
	Currency string
}

// ProtocolFees summarizes fees and revenue for a protocol slug.
func (s *Skill) ProtocolFees(ctx context.Context, req ProtocolFeesRequest) string {
	if req.Protocol == "" {
		return "Protocol fee not available"
	}

	dataType := req.DataType
	if dataType == "" {
		dataType = defaultDataType
	}

	data, errMsg := s.fetch(ctx, s.api, "/summary/fees/"+httpx.PathSegment(req.Protocol), url.Values{"dataType": {dataType}}, "protocol fee", req.Protocol)
	if errMsg != "" {
		return errMsg
	}

	currency := s.currencyOr(req.Currency)
	var b strings.Builder
	fmt.Fprintf(&b, "Protocol: %s\n", displayOr(data.Get("name"), req.Protocol))
	fmt.Fprintf(&b, "Description: %s\n", displayOr(data.Get("description"), "No description available."))
	fmt.Fprintf(&b, "24h Fees/Revenue: %s%s\n", currency, display(data.Get("total24h")))
	fmt.Fprintf(&b, "7d Total Fees/Revenue: %s%s\n", currency, display(data.Get("total7d")))
	fmt.Fprintf(&b, "All-Time Total: %s%s\n", currency, display(data.Get("totalAllTime")))
	return b.String()
}
