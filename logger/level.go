package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Level defines log severity.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// LogLevel is used by Logger.Log. It has no weight and is never filtered.
	LogLevel
	// SilentLevel is a threshold only: it suppresses every filtered level.
	SilentLevel
)

// levelEnv seeds the default threshold for DefaultOptions.
const levelEnv = "LOGGER_LEVEL"

type levelInfo struct {
	name   string
	label  string
	style  string
	weight int // 0 means unweighted
}

var levels = map[Level]levelInfo{
	DebugLevel:  {name: "debug", label: "DEBUG", weight: 1},
	InfoLevel:   {name: "info", label: "INFO", style: "cyan", weight: 2},
	WarnLevel:   {name: "warn", label: "WARN", style: "yellow", weight: 3},
	ErrorLevel:  {name: "error", label: "ERROR", style: "red", weight: 5},
	LogLevel:    {name: "log"},
	SilentLevel: {name: "silent", weight: 8},
}

// AllLevels returns every known level, thresholds and LogLevel included.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, LogLevel, SilentLevel}
}

// String returns the lower-case name of the level.
func (l Level) String() string {
	if info, ok := levels[l]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown(%d)", int(l))
}

// Label returns the text used inside the [LABEL] prefix. LogLevel and
// SilentLevel have no label.
func (l Level) Label() string {
	return levels[l].label
}

func (l Level) style() string {
	return levels[l].style
}

func (l Level) weight() int {
	return levels[l].weight
}

// IsThreshold reports whether l can be used as a filter threshold.
func (l Level) IsThreshold() bool {
	return l.weight() > 0
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levels[l]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name. Matching is case-insensitive and
// "warning" is accepted for WarnLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "log":
		return LogLevel, nil
	case "silent":
		return SilentLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

var (
	envLevel     = WarnLevel
	envLevelOnce sync.Once
)

// defaultLevel returns the threshold from LOGGER_LEVEL, read once per process.
// Unset or unusable values fall back to WarnLevel.
func defaultLevel() Level {
	envLevelOnce.Do(func() {
		v := os.Getenv(levelEnv)
		if v == "" {
			return
		}
		if l, err := ParseLevel(v); err == nil && l.IsThreshold() {
			envLevel = l
		}
	})
	return envLevel
}
