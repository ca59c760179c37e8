package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variables read when the default logger is first used.
const (
	// EnvLogLevel sets the minimum level: trace, debug, info, warn,
	// error or disabled. The default is info.
	EnvLogLevel = "KEYMODE_LOG_LEVEL"

	// EnvLogTimestamp adds a timestamp to every line when true.
	EnvLogTimestamp = "KEYMODE_LOG_TIMESTAMP"

	// EnvLogNoColor disables colored output when true. Color is also
	// disabled automatically when stderr is not a terminal.
	EnvLogNoColor = "KEYMODE_LOG_NOCOLOR"
)

// ParseLevel converts a level name to a Level. The second return is
// false when the name is not recognized.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "disabled":
		return LevelDisabled, true
	}
	return LevelInfo, false
}

// NewConsoleWriter returns a writer rendering log lines for humans.
// Color is used when f is a terminal, unless noColor is set.
func NewConsoleWriter(f *os.File, noColor bool) io.Writer {
	if !noColor {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(f),
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
}

func newFromEnv() *Logger {
	level := LevelInfo
	if s, ok := os.LookupEnv(EnvLogLevel); ok {
		if parsed, ok := ParseLevel(s); ok {
			level = parsed
		}
	}
	logger := New(NewConsoleWriter(os.Stderr, envBool(EnvLogNoColor)), level)
	if envBool(EnvLogTimestamp) {
		logger.zl = logger.zl.With().Timestamp().Logger()
	}
	return logger
}

func envBool(name string) bool {
	s, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}
