package fitz

import "github.com/ehalferty/mupdf"

// record writes the error record and performs the diagnostic side effects
// of a throw. KindAbort suppresses the log line but still propagates.
func (c *Context) record(kind Kind, format string, args ...any) {
	c.errcode = kind
	c.errlen = mupdf.FormatMessage(c.errmsg[:], format, args...)
	if kind != KindAbort {
		c.FlushWarnings()
		c.sink.Error(string(c.errmsg[:c.errlen]))
	}
}

// Throw records kind and a formatted message, then unwinds to the
// innermost guarded region. It does not return. Throwing with no region
// open writes an uncaught line and terminates the process.
func (c *Context) Throw(kind Kind, format string, args ...any) {
	c.record(kind, format, args...)
	c.throw()
}

// Rethrow propagates the active error to the enclosing region without
// touching the error record. Valid only while a catch block is running.
// It does not return.
func (c *Context) Rethrow() {
	c.assertActiveError()
	c.throw()
}

// RethrowIf rethrows only when the active error is of the given kind;
// otherwise the error is treated as handled and RethrowIf returns.
func (c *Context) RethrowIf(kind Kind) {
	c.assertActiveError()
	if c.errcode == kind {
		c.Rethrow()
	}
}

func (c *Context) throw() {
	if c.top >= 0 {
		c.stack[c.top].phase = throwPhase(c.stack[c.top].phase)
		panic(&c.sig)
	}
	c.sink.Uncaught(string(c.errmsg[:c.errlen]))
	c.exit(1)
	panic("fitz: exit function returned")
}

// pushTry opens a frame for a new guarded region. When fewer than two
// slots remain it does not push: it records a stack-overflow error and
// synthesizes a frame that arrives in the always/catch blocks as if a
// throw had already unwound there, then reports false so the try body is
// skipped.
func (c *Context) pushTry() bool {
	if c.top+2 >= frameCapacity {
		c.record(KindStackOverflow, "exception stack overflow!")
		c.top++
		c.stack[c.top].phase = throwPhase(0)
		return false
	}
	c.top++
	c.stack[c.top].phase = 0
	return true
}
