package logger

import "strconv"

// Options defines how a Logger decorates and filters its output.
type Options struct {
	// Colour wraps each line with the level's ANSI style on interactive terminals.
	// Default: true
	Colour bool
	// TimeStamp prepends the local time (YYYY-MM-DD HH:MM:SS.mmm).
	// Default: false
	TimeStamp bool
	// Prefix prepends the [LEVEL] tag.
	// Default: true
	Prefix bool
	// Level is the minimum level that passes the filter.
	// Default: LOGGER_LEVEL when set to a valid threshold, otherwise WarnLevel
	Level Level
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Colour:    true,
		TimeStamp: false,
		Prefix:    true,
		Level:     defaultLevel(),
	}
}

// WithColour enables or disables ANSI styling.
func WithColour(on bool) Option {
	return func(o *Options) { o.Colour = on }
}

// WithTimeStamp enables or disables the timestamp.
func WithTimeStamp(on bool) Option {
	return func(o *Options) { o.TimeStamp = on }
}

// WithPrefix enables or disables the [LEVEL] tag.
func WithPrefix(on bool) Option {
	return func(o *Options) { o.Prefix = on }
}

// WithLevel sets the initial threshold.
func WithLevel(level Level) Option {
	return func(o *Options) { o.Level = level }
}

// WithOptions replaces every field at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Key returns the canonical form used to share loggers between callers.
// Equal keys mean equivalent options.
func (o Options) Key() string {
	return "colour:" + strconv.FormatBool(o.Colour) +
		",timeStamp:" + strconv.FormatBool(o.TimeStamp) +
		",prefix:" + strconv.FormatBool(o.Prefix) +
		",logLevel:" + o.Level.String()
}
