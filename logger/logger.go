package logger

import (
	"fmt"
	"sync"
)

// Logger filters, decorates and dispatches lines to a Provider.
// It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	level    Level
	provider Provider
	format   Decorator
	opts     Options
}

// New builds a Logger from DefaultOptions overridden by opts.
func New(opts ...Option) (*Logger, error) {
	return newLogger(resolveOptions(opts))
}

func newLogger(o Options) (*Logger, error) {
	l := &Logger{opts: o}
	if err := l.SetLevel(o.Level); err != nil {
		return nil, err
	}
	if err := l.SetProvider(DefaultProvider); err != nil {
		return nil, err
	}

	// Compose runs the last decorator first: the prefix goes on the raw
	// message, the timestamp in front of it, and the colour around the whole line.
	var decorators []Decorator
	if o.Colour {
		decorators = append(decorators, Colorize)
	}
	if o.TimeStamp {
		decorators = append(decorators, StampTime)
	}
	if o.Prefix {
		decorators = append(decorators, PrefixLevel)
	} else {
		decorators = append(decorators, passthrough)
	}

	format, err := Compose(decorators...)
	if err != nil {
		return nil, err
	}
	l.format = format
	return l, nil
}

// SetLevel changes the threshold for subsequent calls. LogLevel and unknown
// values are rejected and leave the current threshold in place.
func (l *Logger) SetLevel(level Level) error {
	if !level.IsThreshold() {
		return fmt.Errorf("%w: %s", ErrInvalidLevel, level)
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return nil
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetProvider calls factory once and sends all further output to its result.
func (l *Logger) SetProvider(factory ProviderFactory) error {
	if factory == nil {
		return fmt.Errorf("%w: provider factory is nil", ErrInvalidArgument)
	}
	p := factory()
	if p == nil {
		return fmt.Errorf("%w: provider factory returned nil", ErrInvalidArgument)
	}
	l.mu.Lock()
	l.provider = p
	l.mu.Unlock()
	return nil
}

// Options returns the options the logger was built with.
func (l *Logger) Options() Options {
	return l.opts
}

// Enabled reports whether a message at level passes the current threshold.
// LogLevel is always enabled.
func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled(level)
}

func (l *Logger) enabled(level Level) bool {
	if level == LogLevel {
		return true
	}
	w := level.weight()
	return w > 0 && l.level.weight() <= w
}

// Log writes a message regardless of the threshold.
func (l *Logger) Log(args ...any) error {
	return l.dispatch(LogLevel, args)
}

// Debug writes a debug message when the threshold allows it.
func (l *Logger) Debug(args ...any) error {
	return l.dispatch(DebugLevel, args)
}

// Info writes an informational message when the threshold allows it.
func (l *Logger) Info(args ...any) error {
	return l.dispatch(InfoLevel, args)
}

// Warn writes a warning when the threshold allows it.
func (l *Logger) Warn(args ...any) error {
	return l.dispatch(WarnLevel, args)
}

// Error writes an error message when the threshold allows it.
func (l *Logger) Error(args ...any) error {
	return l.dispatch(ErrorLevel, args)
}

// dispatch formats outside the lock, so arguments whose String method logs
// through the same logger do not deadlock. The provider call is locked so
// lines from concurrent goroutines never interleave.
func (l *Logger) dispatch(level Level, args []any) error {
	if !l.Enabled(level) {
		return nil
	}
	msg, err := Sprintf(args...)
	if err != nil {
		return err
	}
	msg = l.format(msg, level)

	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case DebugLevel:
		l.provider.Debug(msg)
	case InfoLevel:
		l.provider.Info(msg)
	case WarnLevel:
		l.provider.Warn(msg)
	case ErrorLevel:
		l.provider.Error(msg)
	default:
		l.provider.Log(msg)
	}
	return nil
}
