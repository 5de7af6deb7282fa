package llama

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"defiskills/internal/httpx"
)

// ProtocolTVLRequest parameterizes the current TVL lookup.
type ProtocolTVLRequest struct {
	Protocol string
	Currency string
}

// ProtocolTVL reports the current total value locked of a protocol slug.
func (s *Skill) ProtocolTVL(ctx context.Context, req ProtocolTVLRequest) string {
	if req.Protocol == "" {
		return "Protocol TVL not available."
	}

	tvl, errMsg := s.fetch(ctx, s.api, "/tvl/"+httpx.PathSegment(req.Protocol), nil, "protocol tvl", req.Protocol)
	if errMsg != "" {
		return errMsg
	}
	if tvl.Type == gjson.Null {
		return "Protocol TVL not available"
	}

	return fmt.Sprintf("Protocol: %s\nCurrent TVL: %s%s", req.Protocol, s.currencyOr(req.Currency), display(tvl))
}
