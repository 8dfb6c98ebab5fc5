// Package fitz implements the exception core: per-context guarded regions
// with try/always/catch semantics, a fixed-capacity exception stack, and a
// deduplicating warning record.
//
// A Context owns one exception stack and one error/warning record. Do opens
// a guarded region; Throw records an error and unwinds to the innermost
// region; Rethrow and RethrowIf forward the active error outward. The catch
// block of a region runs exactly once whenever its try or always block
// threw, and reads the active error through Caught and CaughtMessage.
//
// The error record holds only the most recent throw. If an always block
// throws while an earlier error is unwinding, the earlier error is lost;
// callers rely on this single-error, last-write-wins behavior.
package fitz
