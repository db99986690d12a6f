package ccsubdiv

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by ccsubdiv. By default, ccsubdiv
// produces no log output. Call SetLogger to enable logging, typically
// with a logger built by engineconfig from the Logging section of Config.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ccsubdiv:
//   - [zap.InfoLevel]: Create, successful container Load and Save
//   - [zap.WarnLevel]: a container Load whose decoding failed
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ccsubdiv. Safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
