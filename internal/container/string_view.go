package container

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/koto-lang/koto/internal/value"
)

// stringView walks a String by grapheme cluster rather than by raw rune,
// resolving Open Question 2: iterating "é" (e + combining acute) yields one
// element, not two. The string is first NFC-normalized so a precomposed
// and a decomposed spelling of the same text iterate identically, then
// split into clusters by grouping each base rune with any combining marks
// (Unicode category M) that immediately follow it.
//
// This is a pragmatic approximation of full UAX #29 grapheme segmentation —
// it does not special-case regional indicators, ZWJ emoji sequences or
// Hangul jamo — sufficient for the common case of base+diacritic text the
// spec's example targets, without pulling in a dedicated segmentation
// library the pack does not carry.
type stringView struct {
	clusters []string
	pos      int
}

func newStringView(s value.String) *stringView {
	normalized := norm.NFC.String(s.Value)
	runes := []rune(normalized)
	var clusters []string
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && unicode.Is(unicode.M, runes[j]) {
			j++
		}
		clusters = append(clusters, string(runes[i:j]))
		i = j
	}
	return &stringView{clusters: clusters}
}

func (v *stringView) Next() (value.Value, bool) {
	if v.pos >= len(v.clusters) {
		return nil, false
	}
	el := v.clusters[v.pos]
	v.pos++
	return value.String{Value: el}, true
}

func (v *stringView) Copy() value.View {
	return &stringView{clusters: v.clusters, pos: v.pos}
}
