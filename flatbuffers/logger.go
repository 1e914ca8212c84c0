package flatbuffers

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger. It is a no-op logger unless
// SetLogger has been called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the package logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

var nopLogger = zap.NewNop()
