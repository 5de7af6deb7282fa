package tools

import (
	"context"

	"defiskills/internal/dexscreener"
	"defiskills/internal/llama"
	"defiskills/internal/twitter"
)

const (
	ChainFeesName       = "defi_llama_fees_overview"
	ProtocolFeesName    = "protocol_fees_tool"
	CoinChangeName      = "coin_percentage_change_tool"
	ProtocolTVLName     = "protocol_tvl_tool"
	TokenLiquidityName  = "dexscreener_token_liquidity_metrics"
	twitterToolPrefix   = "twitter_"
	currencyDescription = "Currency symbol prefixed to amounts"
)

// LlamaTools exposes the DeFi Llama skills.
func LlamaTools(skill *llama.Skill) []Tool {
	return []Tool{
		New(ChainFeesName,
			"Fetches fees and revenue information for a specified blockchain from DeFi Llama's API. "+
				"Allows configuration of parameters such as excluding chart data and specifying data types.",
			ObjectSchema(map[string]interface{}{
				"chain":                              StringProperty("Chain name, e.g. ethereum or arbitrum"),
				"exclude_total_data_chart":           BooleanProperty("Exclude the aggregated chart from the response", true),
				"exclude_total_data_chart_breakdown": BooleanProperty("Exclude the broken down chart from the response", true),
				"data_type":                          StringDefaultProperty("Metric to summarize, e.g. dailyFees or dailyRevenue", "dailyFees"),
				"currency":                           StringDefaultProperty(currencyDescription, llama.DefaultCurrency),
			}, "chain"),
			func(ctx context.Context, args Args) (interface{}, error) {
				req := llama.NewChainFeesRequest("")
				var err error
				if req.Chain, err = args.String("chain", ""); err != nil {
					return nil, err
				}
				if req.ExcludeTotalDataChart, err = args.Bool("exclude_total_data_chart", req.ExcludeTotalDataChart); err != nil {
					return nil, err
				}
				if req.ExcludeTotalDataChartBreakdown, err = args.Bool("exclude_total_data_chart_breakdown", req.ExcludeTotalDataChartBreakdown); err != nil {
					return nil, err
				}
				if req.DataType, err = args.String("data_type", req.DataType); err != nil {
					return nil, err
				}
				if req.Currency, err = args.String("currency", ""); err != nil {
					return nil, err
				}
				return skill.ChainFees(ctx, req), nil
			},
		),
		New(ProtocolFeesName,
			"Fetches summary of protocol fees and revenue information from DeFi Llama's API, including historical data. "+
				"Requires protocol slug as input and allows specifying data type (default: dailyFees).",
			ObjectSchema(map[string]interface{}{
				"protocol":  StringProperty("Protocol slug, e.g. uniswap"),
				"data_type": StringDefaultProperty("Metric to summarize, e.g. dailyFees or dailyRevenue", "dailyFees"),
				"currency":  StringDefaultProperty(currencyDescription, llama.DefaultCurrency),
			}, "protocol"),
			func(ctx context.Context, args Args) (interface{}, error) {
				var req llama.ProtocolFeesRequest
				var err error
				if req.Protocol, err = args.String("protocol", ""); err != nil {
					return nil, err
				}
				if req.DataType, err = args.String("data_type", ""); err != nil {
					return nil, err
				}
				if req.Currency, err = args.String("currency", ""); err != nil {
					return nil, err
				}
				return skill.ProtocolFees(ctx, req), nil
			},
		),
		New(CoinChangeName,
			"Fetches the percentage change in price for a specified coin over a given period. "+
				"Requires a coin identifier (chain and contract address) and allows specifying lookForward and period.",
			ObjectSchema(map[string]interface{}{
				"chain":            StringProperty("Chain of the token, e.g. ethereum or solana"),
				"contract_address": StringProperty("Token contract address on that chain"),
				"look_forward":     BooleanProperty("Measure the change forward from the period start", false),
				"period":           StringDefaultProperty("Duration of the window, e.g. 24h, 7d, 1w", "24h"),
			}, "chain", "contract_address"),
			func(ctx context.Context, args Args) (interface{}, error) {
				var req llama.CoinChangeRequest
				var err error
				if req.Chain, err = args.String("chain", ""); err != nil {
					return nil, err
				}
				if req.ContractAddress, err = args.String("contract_address", ""); err != nil {
					return nil, err
				}
				if req.LookForward, err = args.Bool("look_forward", false); err != nil {
					return nil, err
				}
				if req.Period, err = args.String("period", ""); err != nil {
					return nil, err
				}
				return skill.CoinPercentageChange(ctx, req), nil
			},
		),
		New(ProtocolTVLName,
			"Fetches the current Total Value Locked (TVL) of a specified protocol from DeFi Llama's API. "+
				"Requires the protocol slug as input.",
			ObjectSchema(map[string]interface{}{
				"protocol": StringProperty("Protocol slug, e.g. aave"),
				"currency": StringDefaultProperty(currencyDescription, llama.DefaultCurrency),
			}, "protocol"),
			func(ctx context.Context, args Args) (interface{}, error) {
				var req llama.ProtocolTVLRequest
				var err error
				if req.Protocol, err = args.String("protocol", ""); err != nil {
					return nil, err
				}
				if req.Currency, err = args.String("currency", ""); err != nil {
					return nil, err
				}
				return skill.ProtocolTVL(ctx, req), nil
			},
		),
	}
}

// DexScreenerTool exposes the token liquidity metrics skill.
func DexScreenerTool(skill *dexscreener.Skill) Tool {
	return New(TokenLiquidityName,
		"Fetches liquidity and market metrics for a specified token_name from DexScreener's API. "+
			"Calculates median FDV, marketCap, liquidity.usd across all pairs, and returns the best matching pair per chain.",
		ObjectSchema(map[string]interface{}{
			"token_name": StringProperty("Token name or symbol to search for"),
		}, "token_name"),
		func(ctx context.Context, args Args) (interface{}, error) {
			name, err := args.String("token_name", "")
			if err != nil {
				return nil, err
			}
			return skill.TokenLiquidity(ctx, name), nil
		},
	)
}

type twitterSpec struct {
	description string
	schema      Schema
	params      func(args Args) (twitter.Params, error)
}

var twitterSpecs = map[string]twitterSpec{
	twitter.FnGetMetrics: {
		description: "Get follower, following and tweet counts of the authenticated account.",
		schema:      ObjectSchema(nil),
		params:      func(Args) (twitter.Params, error) { return twitter.Params{}, nil },
	},
	twitter.FnReplyTweet: {
		description: "Reply to a tweet.",
		schema: ObjectSchema(map[string]interface{}{
			"tweet_id": IDProperty("Id of the tweet to reply to"),
			"reply":    StringProperty("Reply text"),
		}, "tweet_id", "reply"),
		params: func(args Args) (twitter.Params, error) { return textParams(args, "reply") },
	},
	twitter.FnReplyTweetLong: {
		description: "Reply to a tweet with a thread, each message answering the previous one.",
		schema: ObjectSchema(map[string]interface{}{
			"tweet_id":   IDProperty("Id of the tweet to reply to"),
			"reply_list": StringArrayProperty("Thread messages in order"),
		}, "tweet_id", "reply_list"),
		params: func(args Args) (twitter.Params, error) {
			if err := args.Require("tweet_id", "reply_list"); err != nil {
				return twitter.Params{}, err
			}
			id, err := args.ID("tweet_id")
			if err != nil {
				return twitter.Params{}, err
			}
			replies, err := args.StringSlice("reply_list")
			if err != nil {
				return twitter.Params{}, err
			}
			return twitter.Params{TweetID: id, Replies: replies}, nil
		},
	},
	twitter.FnPostTweet: {
		description: "Post a tweet.",
		schema: ObjectSchema(map[string]interface{}{
			"tweet": StringProperty("Tweet text"),
		}, "tweet"),
		params: func(args Args) (twitter.Params, error) {
			if err := args.Require("tweet"); err != nil {
				return twitter.Params{}, err
			}
			text, err := args.String("tweet", "")
			return twitter.Params{Text: text}, err
		},
	},
	twitter.FnLikeTweet: {
		description: "Like a tweet.",
		schema: ObjectSchema(map[string]interface{}{
			"tweet_id": IDProperty("Id of the tweet to like"),
		}, "tweet_id"),
		params: func(args Args) (twitter.Params, error) {
			if err := args.Require("tweet_id"); err != nil {
				return twitter.Params{}, err
			}
			id, err := args.ID("tweet_id")
			return twitter.Params{TweetID: id}, err
		},
	},
	twitter.FnQuoteTweet: {
		description: "Quote a tweet with a comment.",
		schema: ObjectSchema(map[string]interface{}{
			"tweet_id": IDProperty("Id of the tweet to quote"),
			"quote":    StringProperty("Quote text"),
		}, "tweet_id", "quote"),
		params: func(args Args) (twitter.Params, error) { return textParams(args, "quote") },
	},
}

func textParams(args Args, textField string) (twitter.Params, error) {
	if err := args.Require("tweet_id", textField); err != nil {
		return twitter.Params{}, err
	}
	id, err := args.ID("tweet_id")
	if err != nil {
		return twitter.Params{}, err
	}
	text, err := args.String(textField, "")
	if err != nil {
		return twitter.Params{}, err
	}
	return twitter.Params{TweetID: id, Text: text}, nil
}

// TwitterTools exposes each plugin function as twitter_<function>.
func TwitterTools(plugin *twitter.Plugin) ([]Tool, error) {
	var out []Tool
	for _, name := range plugin.AvailableFunctions() {
		spec, ok := twitterSpecs[name]
		if !ok {
			continue
		}
		fn, err := plugin.GetFunction(name)
		if err != nil {
			return nil, err
		}
		params := spec.params
		out = append(out, New(twitterToolPrefix+name, spec.description, spec.schema,
			func(ctx context.Context, args Args) (interface{}, error) {
				p, err := params(args)
				if err != nil {
					return nil, err
				}
				return fn(ctx, p)
			},
		))
	}
	return out, nil
}
