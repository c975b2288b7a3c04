package game

import (
	"fmt"
	"log"
)

// EnableDebug turns on per-event trace logging. Warnings and errors are
// always emitted.
var EnableDebug = false

// LogLevel classifies a log line for the sink.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "DEBUG"
	}
}

// LogSink receives every emitted line. The browser build points it at the
// JS console; everything else uses the standard logger.
var LogSink = func(level LogLevel, msg string) {
	log.Printf("[%s] %s", level, msg)
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		LogSink(LevelDebug, fmt.Sprintln(args...))
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		LogSink(LevelDebug, fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning.
func DebugWarn(args ...interface{}) {
	LogSink(LevelWarn, fmt.Sprintln(args...))
}

// DebugError logs an error.
func DebugError(args ...interface{}) {
	LogSink(LevelError, fmt.Sprintln(args...))
}
