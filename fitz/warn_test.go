package fitz

import (
	"reflect"
	"strings"
	"testing"
)

func TestWarnDeduplication(t *testing.T) {
	tests := []struct {
		name  string
		warns []string
		flush bool
		want  []string
	}{
		{
			name:  "single warning",
			warns: []string{"A"},
			want:  []string{"A"},
		},
		{
			name:  "repeats collapse",
			warns: []string{"A", "A", "A", "B"},
			want:  []string{"A", "... repeated 2 times ...", "B"},
		},
		{
			name:  "single repeat",
			warns: []string{"A", "A", "B"},
			want:  []string{"A", "... repeated 1 times ...", "B"},
		},
		{
			name:  "alternating never collapses",
			warns: []string{"A", "B", "A"},
			want:  []string{"A", "B", "A"},
		},
		{
			name:  "flush reports pending repeats",
			warns: []string{"A", "A", "A"},
			flush: true,
			want:  []string{"A", "... repeated 2 times ..."},
		},
		{
			name:  "flush with no repeats is silent",
			warns: []string{"A"},
			flush: true,
			want:  []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, sink := newTestContext()
			for _, w := range tt.warns {
				ctx.Warn("%s", w)
			}
			if tt.flush {
				ctx.FlushWarnings()
			}
			if !reflect.DeepEqual(sink.warnings, tt.want) {
				t.Errorf("warnings = %q, want %q", sink.warnings, tt.want)
			}
		})
	}
}

func TestWarnFlushClearsRecord(t *testing.T) {
	ctx, sink := newTestContext()

	ctx.Warn("A")
	ctx.Warn("A")
	ctx.FlushWarnings()
	// The same message after a flush is a fresh run, not a repeat.
	ctx.Warn("A")

	want := []string{"A", "... repeated 1 times ...", "A"}
	if !reflect.DeepEqual(sink.warnings, want) {
		t.Errorf("warnings = %q, want %q", sink.warnings, want)
	}
}

func TestThrowFlushesWarnings(t *testing.T) {
	ctx, sink := newTestContext()

	ctx.Do(func() {
		ctx.Warn("low memory")
		ctx.Warn("low memory")
		ctx.Throw(KindGeneric, "out of memory")
	}, nil, func() {})

	wantWarnings := []string{"low memory", "... repeated 1 times ..."}
	if !reflect.DeepEqual(sink.warnings, wantWarnings) {
		t.Errorf("warnings = %q, want %q", sink.warnings, wantWarnings)
	}
	if len(sink.errors) != 1 {
		t.Errorf("errors = %q", sink.errors)
	}
}

func TestAbortDoesNotFlushWarnings(t *testing.T) {
	ctx, sink := newTestContext()

	ctx.Do(func() {
		ctx.Warn("pending")
		ctx.Warn("pending")
		ctx.Throw(KindAbort, "interrupted")
	}, nil, func() {})

	// The repeat summary stays pending: abort performs no logging at all.
	want := []string{"pending"}
	if !reflect.DeepEqual(sink.warnings, want) {
		t.Errorf("warnings = %q, want %q", sink.warnings, want)
	}
}

func TestWarnTruncation(t *testing.T) {
	ctx, sink := newTestContext()

	long := strings.Repeat("w", 1000)
	ctx.Warn("%s", long)
	// The truncated form must dedupe against itself.
	ctx.Warn("%s", long)
	ctx.FlushWarnings()

	if len(sink.warnings) != 2 {
		t.Fatalf("warnings = %d lines, want 2", len(sink.warnings))
	}
	if sink.warnings[0] != long[:256] {
		t.Error("warning not truncated to the message bound")
	}
	if sink.warnings[1] != "... repeated 1 times ..." {
		t.Errorf("summary = %q", sink.warnings[1])
	}
}
