package logger

import (
	"sync"
	"time"
)

const minIntervalBetweenWarnings = 1 * time.Second

type limitedLogger struct {
	w           Writer
	mutex       sync.Mutex
	lastPrinted time.Time
}

// NewLimitedLogger is a wrapper around a Writer that drops messages printed
// more often than once per second, for use around decode-error logging in
// loops that reprocess the same malformed stream.
func NewLimitedLogger(w Writer) Writer {
	return &limitedLogger{w: w}
}

func (l *limitedLogger) Log(level Level, format string, args ...interface{}) {
	now := time.Now()
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if now.Sub(l.lastPrinted) >= minIntervalBetweenWarnings {
		l.lastPrinted = now
		l.w.Log(level, format, args...)
	}
}
