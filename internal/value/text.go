package value

import "strconv"

// String is immutable UTF-8 text. Assignment copies the handle,
// which for a Go string is already a cheap, immutable, shared-backing-array
// copy — no extra work needed to honor "assignment copies the handle".
type String struct {
	Value string
}

func (s String) Kind() Kind      { return KindString }
func (s String) Display() string { return s.Value }

// Runes returns the string's codepoints. Index and Slice use them, so
// direct v[i] indexing stays at the simpler rune granularity (see
// internal/container for the grapheme-cluster view used by iteration), the
// way the teacher indexes Char out of a List, since only 0-based integer
// indices are required here, not grapheme segmentation.
func (s String) Runes() []rune { return []rune(s.Value) }

func (s String) Quote() string { return strconv.Quote(s.Value) }
