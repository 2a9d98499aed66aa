package logger

import (
	"io"
	"os"
)

// Provider writes fully decorated lines to their destination.
type Provider interface {
	Log(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// ProviderFactory builds the provider installed by Logger.SetProvider.
type ProviderFactory func() Provider

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// ConsoleProvider routes log, debug and info lines to Stdout and warn and
// error lines to Stderr. Each line is terminated with a newline.
type ConsoleProvider struct {
	Stdout io.Writer
	Stderr io.Writer
	// DebugOut receives debug lines. Default: nil (debug goes to Stdout)
	DebugOut io.Writer
	// Journal adds the journald priority prefix (<7>, <6>, ...) to every line.
	// Default: set when JOURNAL_STREAM is present
	Journal bool
}

// DefaultProvider returns the console provider bound to the process's
// standard output and error streams.
func DefaultProvider() Provider {
	return &ConsoleProvider{
		Stdout:  outStdout,
		Stderr:  outStderr,
		Journal: shouldUseSyslogPrefix(),
	}
}

// Log writes msg to stdout.
func (c *ConsoleProvider) Log(msg string) { c.write(c.Stdout, LogLevel, msg) }

// Info writes msg to stdout.
func (c *ConsoleProvider) Info(msg string) { c.write(c.Stdout, InfoLevel, msg) }

// Warn writes msg to stderr.
func (c *ConsoleProvider) Warn(msg string) { c.write(c.Stderr, WarnLevel, msg) }

// Error writes msg to stderr.
func (c *ConsoleProvider) Error(msg string) { c.write(c.Stderr, ErrorLevel, msg) }

// Debug writes msg to DebugOut, or to stdout when DebugOut is nil.
func (c *ConsoleProvider) Debug(msg string) {
	out := c.DebugOut
	if out == nil {
		out = c.Stdout
	}
	c.write(out, DebugLevel, msg)
}

func (c *ConsoleProvider) write(out io.Writer, level Level, msg string) {
	if out == nil {
		return
	}
	if c.Journal {
		out = &syslogPrefixWriter{w: out, prefix: syslogPrefixForLevel(level)}
	}
	// Console writes are fire-and-forget.
	_, _ = io.WriteString(out, msg+"\n")
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixForLevel(level Level) string {
	switch level {
	case DebugLevel:
		return "<7>"
	case InfoLevel, LogLevel:
		return "<6>"
	case WarnLevel:
		return "<4>"
	case ErrorLevel:
		return "<3>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
