package fitz

import (
	"os"

	"github.com/ehalferty/mupdf"
	"github.com/ehalferty/mupdf/diag"
)

// frameCapacity is the fixed depth of the exception stack. One slot is
// kept as headroom so a throw from the deepest region can still report.
const frameCapacity = 32

// frame is one saved control-flow marker. The resumption point itself is
// the recover established by the region driver; only the phase is stored.
type frame struct {
	phase int
}

// Options configures a Context.
type Options struct {
	// Sink receives warning, error and uncaught lines.
	Sink diag.Sink
	// Exit is called with a failure status when an error reaches an empty
	// stack. It must not return.
	Exit func(code int)
}

// DefaultOptions returns the default configuration: diagnostics on stderr,
// os.Exit on uncaught errors.
func DefaultOptions() Options {
	return Options{
		Sink: diag.NewWriterSink(os.Stderr),
		Exit: os.Exit,
	}
}

// Context owns one exception stack and one error/warning record.
// NOT safe for concurrent use: give each worker goroutine its own Context.
type Context struct {
	sink diag.Sink
	exit func(int)

	stack [frameCapacity]frame
	top   int // index of the active frame, -1 when no region is open

	errcode Kind
	errmsg  [mupdf.MaxMessage]byte
	errlen  int

	warnmsg   [mupdf.MaxMessage]byte
	warnlen   int
	warnCount int

	sig unwindSignal
}

// New creates a Context with the given options.
func New(opts Options) *Context {
	c := &Context{
		sink: opts.Sink,
		exit: opts.Exit,
		top:  -1,
	}
	if c.sink == nil {
		c.sink = diag.NewWriterSink(os.Stderr)
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	return c
}

// NewWithDefaults creates a Context with DefaultOptions.
func NewWithDefaults() *Context {
	return New(DefaultOptions())
}

// debug enables fail-fast contract checks on the query accessors.
var debug = false

func (c *Context) assertActiveError() {
	if debug && c.errcode == KindNone {
		panic("fitz: no active error")
	}
}

// Caught reports the kind of the active error. Valid only while a catch
// block is running; the value is stale outside that window.
func (c *Context) Caught() Kind {
	c.assertActiveError()
	return c.errcode
}

// CaughtMessage reports the message of the active error. Valid only while
// a catch block is running.
func (c *Context) CaughtMessage() string {
	c.assertActiveError()
	return string(c.errmsg[:c.errlen])
}
