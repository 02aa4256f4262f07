package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level orders log entries. Trace sits below debug so that Level zero is info.
type Level int8

const (
	TraceLevel Level = iota - 2
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel entries are followed by os.Exit in Fatal
	FatalLevel
)

var levelNames = map[Level]string{
	TraceLevel: "trace",
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

func (l Level) String() string {
	return levelNames[l]
}

// Enabled reports whether entries at lvl pass a logger set to l.
func (l Level) Enabled(lvl Level) bool {
	return lvl >= l
}

// zapLevel maps a Level onto zap. Trace has no zap counterpart and is
// written at debug; fatal is written at error so the exit stays with the caller.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case TraceLevel, DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// GetLevel parses a level name, ignoring case. "warning" is accepted for warn.
// Unknown names yield InfoLevel and an error.
func GetLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return WarnLevel, nil
	}
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// Fatal logs to the DefaultLogger and exits.
func Fatal(v ...interface{}) {
	DefaultLogger.Log(FatalLevel, v...)
	os.Exit(1)
}
