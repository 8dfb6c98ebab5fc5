// Package diag provides the sinks that receive diagnostic lines from the
// exception core.
//
// A Sink accepts lines tagged as warning, error or uncaught. WriterSink
// writes tagged lines to an io.Writer (normally stderr) and duplicates
// them to the package's zap logger as a secondary debug channel.
// BufferedSink adapts output for platform logging calls that only accept
// bounded whole lines.
package diag
