package lookup

import "strings"

// NormalizeISBN keeps the ASCII digits of raw in their original order.
// Hyphens, spaces, brackets and check characters such as X are dropped; no checksum
// is verified.
func NormalizeISBN(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
