package diag

import "time"

// chunkSize matches the fixed native buffer of constrained logging APIs.
const chunkSize = 4096

// BufferedSink adapts diagnostic output for platform logging calls that
// only accept bounded whole lines. Partial writes accumulate until a line
// terminator or the chunk limit arrives; a short delay between flushes
// keeps the platform log from dropping lines. Buffering state is owned by
// the sink instance.
type BufferedSink struct {
	emit  func(line string)
	delay time.Duration
	buf   [chunkSize]byte
	fill  int
}

// NewBufferedSink creates a sink that hands complete lines to emit,
// sleeping delay between flushes. A zero delay disables throttling.
func NewBufferedSink(emit func(line string), delay time.Duration) *BufferedSink {
	return &BufferedSink{emit: emit, delay: delay}
}

func (s *BufferedSink) Warning(line string) { s.write("warning: " + line + "\n") }

func (s *BufferedSink) Error(line string) { s.write("error: " + line + "\n") }

func (s *BufferedSink) Uncaught(line string) { s.write("uncaught exception: " + line + "\n") }

// Flush emits any buffered partial line.
func (s *BufferedSink) Flush() {
	if s.fill > 0 {
		s.flush()
	}
}

func (s *BufferedSink) write(text string) {
	i := 0
	for i < len(text) {
		// Take up to the next line break, limited to the space left in
		// the chunk buffer.
		q := i
		for i < len(text) && text[i] != '\n' {
			i++
		}
		seg := text[q:i]
		if len(seg) > chunkSize-s.fill {
			seg = seg[:chunkSize-s.fill]
			i = q + len(seg)
		}
		s.fill += copy(s.buf[s.fill:], seg)

		if i < len(text) && text[i] == '\n' {
			s.flush()
			i++
		} else if s.fill >= chunkSize {
			s.flush()
		}
	}
}

func (s *BufferedSink) flush() {
	s.emit(string(s.buf[:s.fill]))
	s.fill = 0
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
