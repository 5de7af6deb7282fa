package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "pepe", b: "pepe", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "pepe", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "one extra rune", a: "this is a test", b: "this is a test!", want: 100 * 28.0 / 29.0},
		{name: "prefix", a: "pepe", b: "pepecoin", want: 100 * 8.0 / 12.0},
		{name: "case sensitive", a: "PEPE", b: "pepe", want: 0},
		{name: "unicode", a: "ünï", b: "ün", want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	assert.InDelta(t, Ratio("wrapped ether", "ether"), Ratio("ether", "wrapped ether"), 1e-9)
}
