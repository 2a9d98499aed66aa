package logger

import "fmt"

// Decorator transforms a message for the given level. Decorators must be pure.
type Decorator func(msg string, level Level) string

// Compose chains decorators into one. The last decorator runs first on the
// raw message and its result feeds the one before it, so the first decorator
// produces the final text.
func Compose(decorators ...Decorator) (Decorator, error) {
	if len(decorators) == 0 {
		return nil, fmt.Errorf("%w: compose requires at least one decorator", ErrInvalidArgument)
	}
	for i, d := range decorators {
		if d == nil {
			return nil, fmt.Errorf("%w: decorator %d is nil", ErrInvalidArgument, i)
		}
	}
	chain := append([]Decorator(nil), decorators...)
	return func(msg string, level Level) string {
		for i := len(chain) - 1; i >= 0; i-- {
			msg = chain[i](msg, level)
		}
		return msg
	}, nil
}

// Colorize wraps the whole message with the level's style when the process
// is attached to a terminal.
func Colorize(msg string, level Level) string {
	if !interactive {
		return msg
	}
	return Style(level.style(), msg)
}

// StampTime prepends the local timestamp.
func StampTime(msg string, _ Level) string {
	return Timestamp() + " - " + msg
}

// PrefixLevel prepends the [LABEL] tag. Levels without a label pass through.
func PrefixLevel(msg string, level Level) string {
	label := level.Label()
	if label == "" {
		return msg
	}
	return "[" + label + "] " + msg
}

func passthrough(msg string, _ Level) string {
	return msg
}
