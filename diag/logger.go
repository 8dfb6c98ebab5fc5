package diag

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the diag package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the diag package's logger, the secondary debug
// channel that WriterSink duplicates lines to. This must be called before
// any diagnostic output is produced.
func SetLogger(l *zap.Logger) {
	logger = l
}
