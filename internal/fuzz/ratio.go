// Package fuzz scores how close two strings are on a 0-100 scale.
package fuzz

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Ratio returns the normalized Indel similarity of a and b:
// 100 * 2 * LCS(a, b) / (len(a) + len(b)), counted in runes.
// Two empty strings are identical (100). Comparison is case sensitive.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	if a == b {
		return 100
	}

	common := commonRunes(a, b)
	return 100 * float64(2*common) / float64(total)
}

// commonRunes is the length of the longest common subsequence, read off the
// equal segments of a minimal character diff.
func commonRunes(a, b string) int {
	dmp := diffmatchpatch.New()
	// No deadline: the half-match shortcut is skipped and the diff stays minimal.
	dmp.DiffTimeout = 0

	var common int
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			common += utf8.RuneCountInString(d.Text)
		}
	}
	return common
}
