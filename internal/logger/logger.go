package logger

import (
	"strings"
	"sync"
)

// Accepted values for log.level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	processLogger *Logger
	once          sync.Once
)

// Get returns the process-wide logger. The level only matters on the first call.
func Get(level string) *Logger {
	once.Do(func() {
		processLogger = New(level)
	})
	return processLogger
}

// New builds an independent logger writing to stdout at the given level.
func New(level string) *Logger {
	return newZapLogger(strings.ToLower(strings.TrimSpace(level)))
}

// ValidLevel reports whether level is one of the accepted level names.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return true
	}
	return false
}
