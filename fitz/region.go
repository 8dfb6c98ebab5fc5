package fitz

// unwindSignal is the panic payload used by throw. Each Context panics
// with a pointer to its own signal, so region drivers recover only their
// own unwinds and foreign panics pass through untouched.
type unwindSignal struct{}

// Do runs try inside a new guarded region. If try throws, control unwinds
// back here; always (if non-nil) then runs once, whether or not try threw,
// and may itself throw. catch runs exactly once whenever try or always
// threw, and is the only place Caught, CaughtMessage, Rethrow and
// RethrowIf are valid. A nil catch treats any error as handled.
//
// Regions nest: a throw always unwinds to the innermost open region, and
// a catch block may Rethrow to hand the error to the enclosing one.
func (c *Context) Do(try, always, catch func()) {
	if c.pushTry() {
		c.protect(try)
	}
	if always != nil && runsAlways(c.stack[c.top].phase) {
		c.stack[c.top].phase = alwaysPhase(c.stack[c.top].phase)
		c.protect(always)
	}
	phase := c.stack[c.top].phase
	c.top--
	if runsCatch(phase) && catch != nil {
		catch()
	}
}

// protect runs fn, converting this context's unwind panic back into
// ordinary control flow at the region boundary.
func (c *Context) protect(fn func()) {
	defer func() {
		if r := recover(); r != nil && r != &c.sig {
			panic(r)
		}
	}()
	fn()
}
