package pattern

import "unicode/utf8"

// decodeRunes splits s into its scalar values one at a time, the same
// decoding step a reverse reader would use going the other direction, so
// the matcher can index by scalar position instead of byte offset — a
// multi-byte scalar still counts as a single character per spec.md §4.4.
func decodeRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		ch, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, ch)
		i += size
	}
	return out
}
