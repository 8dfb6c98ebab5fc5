package fitz

import (
	"bytes"
	"fmt"

	"github.com/ehalferty/mupdf"
)

// Warn formats and emits a warning line. Consecutive byte-identical
// warnings are not re-emitted; they accumulate into a repeat count that
// FlushWarnings reports. Warn never unwinds.
func (c *Context) Warn(format string, args ...any) {
	var buf [mupdf.MaxMessage]byte
	n := mupdf.FormatMessage(buf[:], format, args...)

	if n == c.warnlen && bytes.Equal(buf[:n], c.warnmsg[:n]) && c.warnCount > 0 {
		c.warnCount++
		return
	}
	c.FlushWarnings()
	c.sink.Warning(string(buf[:n]))
	copy(c.warnmsg[:], buf[:n])
	c.warnlen = n
	c.warnCount = 1
}

// FlushWarnings emits the pending repeat summary, if any, and clears the
// warning record. It runs automatically when a distinct warning arrives
// and before any error is logged.
func (c *Context) FlushWarnings() {
	if c.warnCount > 1 {
		c.sink.Warning(fmt.Sprintf("... repeated %d times ...", c.warnCount-1))
	}
	c.warnlen = 0
	c.warnCount = 0
}
