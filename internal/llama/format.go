package llama

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const notAvailable = "N/A"

// display renders a JSON value for a text line. Missing and null values
// render as N/A; numbers use plain decimal notation.
func display(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return notAvailable
	case gjson.Number:
		return plainNumber(r.Raw)
	case gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}

// displayOr is display with a fallback for missing or null values.
func displayOr(r gjson.Result, fallback string) string {
	if r.Type == gjson.Null {
		return fallback
	}
	return display(r)
}

func plainNumber(raw string) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return d.String()
}
