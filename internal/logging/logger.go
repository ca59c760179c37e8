// Package logging provides leveled, structured logging for keymode
// binaries and examples. It wraps zerolog with a small fixed API so
// callers never touch zerolog types directly.
//
// The package-level functions log through a default logger that is
// configured once from the environment. See config.go for the
// variables it reads.
package logging

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Level controls which messages a logger emits.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelDisabled
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelDisabled:
		return "disabled"
	}
	return "unknown"
}

func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelDisabled:
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// Logger emits structured log lines. Loggers are safe for concurrent
// use and cheap to derive from with With.
type Logger struct {
	mu sync.Mutex
	zl zerolog.Logger
}

// New returns a logger writing to out at the given level. Output is
// one JSON object per line; wrap out with NewConsoleWriter for a
// human-readable rendering.
func New(out io.Writer, level Level) *Logger {
	return &Logger{zl: zerolog.New(out).Level(level.zerologLevel())}
}

// SetLevel changes the minimum level the logger emits.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Level(level.zerologLevel())
}

// SetOutput redirects the logger's output.
func (l *Logger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Output(out)
}

// With returns a logger that includes the given key/value pairs on
// every line it emits.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{zl: l.logger().With().Fields(keyvals).Logger()}
}

// Trace logs at trace level. keyvals are alternating keys and values.
func (l *Logger) Trace(msg string, keyvals ...any) {
	zl := l.logger()
	zl.Trace().Fields(keyvals).Msg(msg)
}

// Debug logs at debug level. keyvals are alternating keys and values.
func (l *Logger) Debug(msg string, keyvals ...any) {
	zl := l.logger()
	zl.Debug().Fields(keyvals).Msg(msg)
}

// Info logs at info level. keyvals are alternating keys and values.
func (l *Logger) Info(msg string, keyvals ...any) {
	zl := l.logger()
	zl.Info().Fields(keyvals).Msg(msg)
}

// Warn logs at warn level. keyvals are alternating keys and values.
func (l *Logger) Warn(msg string, keyvals ...any) {
	zl := l.logger()
	zl.Warn().Fields(keyvals).Msg(msg)
}

// Error logs at error level. keyvals are alternating keys and values.
func (l *Logger) Error(msg string, keyvals ...any) {
	zl := l.logger()
	zl.Error().Fields(keyvals).Msg(msg)
}

func (l *Logger) logger() zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the shared logger, configuring it from the
// environment on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = newFromEnv()
	})
	return defaultLogger
}

// SetLevel changes the minimum level of the default logger.
func SetLevel(level Level) { Default().SetLevel(level) }

// SetOutput redirects the default logger's output.
func SetOutput(out io.Writer) { Default().SetOutput(out) }

// With derives a logger from the default logger.
func With(keyvals ...any) *Logger { return Default().With(keyvals...) }

// Trace logs to the default logger.
func Trace(msg string, keyvals ...any) { Default().Trace(msg, keyvals...) }

// Debug logs to the default logger.
func Debug(msg string, keyvals ...any) { Default().Debug(msg, keyvals...) }

// Info logs to the default logger.
func Info(msg string, keyvals ...any) { Default().Info(msg, keyvals...) }

// Warn logs to the default logger.
func Warn(msg string, keyvals ...any) { Default().Warn(msg, keyvals...) }

// Error logs to the default logger.
func Error(msg string, keyvals ...any) { Default().Error(msg, keyvals...) }
