package mupdf

import "fmt"

// MaxMessage is the fixed capacity, in bytes, of every formatted
// diagnostic message. Longer messages are truncated.
const MaxMessage = 256

// FormatMessage formats into dst and returns the number of bytes written,
// never more than len(dst). When the formatted text fits, it is written
// directly into dst's backing array without allocating.
func FormatMessage(dst []byte, format string, args ...any) int {
	out := fmt.Appendf(dst[:0], format, args...)
	if len(out) > len(dst) {
		return copy(dst, out)
	}
	return len(out)
}
