// Package mupdf provides the exception and diagnostics core of the fitz
// library: structured error propagation over guarded try/always/catch
// regions, plus a deduplicating warning sink.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	mupdf/         Root package with the bounded message formatter
//	├── fitz/      Execution contexts, the exception stack, guarded regions,
//	│              throw/rethrow, and warning deduplication
//	├── diag/      Diagnostic sinks: stderr writer, zap debug channel,
//	│              and a buffering adapter for constrained logging APIs
//	└── cmd/fztry/ Demo CLI with scripted scenarios and an interactive
//	               exception-stack inspector
//
// # Quick Start
//
// Create a context and run a guarded region:
//
//	ctx := fitz.NewWithDefaults()
//
//	ctx.Do(func() {
//	    doc := openDocument(ctx, path)
//	    renderPage(ctx, doc, 0)
//	}, nil, func() {
//	    log.Printf("render failed: %s", ctx.CaughtMessage())
//	})
//
// The try body may call ctx.Throw at any depth; control unwinds to the
// innermost region, runs its always block (if any) once, and enters the
// catch block exactly once. An error thrown with no region open is
// reported as an uncaught exception and terminates the process.
//
// # Thread Safety
//
// A Context is NOT safe for concurrent use. Give each worker goroutine its
// own Context; nothing is shared between contexts.
//
// # Resource Model
//
// All bookkeeping lives in fixed-size inline buffers owned by the Context.
// The throw path performs no heap allocation, so errors can still be
// raised and reported under memory pressure.
package mupdf
