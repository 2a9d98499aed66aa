package logger

import (
	"bytes"
	"sync"
	"testing"
)

// captureOutput redirects the console provider's streams for one test.
// Loggers must be built after calling it.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	var stdoutBuf, stderrBuf bytes.Buffer
	oldStdout, oldStderr := outStdout, outStderr
	t.Cleanup(func() { outStdout, outStderr = oldStdout, oldStderr })
	outStdout = &stdoutBuf
	outStderr = &stderrBuf
	t.Setenv("JOURNAL_STREAM", "")
	return &stdoutBuf, &stderrBuf
}

func setInteractive(t *testing.T, on bool) {
	t.Helper()
	old := interactive
	t.Cleanup(func() { interactive = old })
	interactive = on
}

type recorded struct {
	level Level
	msg   string
}

// recordingProvider keeps every line it receives.
type recordingProvider struct {
	mu    sync.Mutex
	lines []recorded
}

func (r *recordingProvider) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, recorded{level: level, msg: msg})
}

func (r *recordingProvider) Log(msg string) { r.add(LogLevel, msg) }
func (r *recordingProvider) Debug(msg string) { r.add(DebugLevel, msg) }
func (r *recordingProvider) Info(msg string) { r.add(InfoLevel, msg) }
func (r *recordingProvider) Warn(msg string) { r.add(WarnLevel, msg) }
func (r *recordingProvider) Error(msg string) { r.add(ErrorLevel, msg) }

func (r *recordingProvider) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.lines...)
}

func (r *recordingProvider) factory() ProviderFactory {
	return func() Provider { return r }
}

// newRecorded builds a logger whose output goes to a recordingProvider.
func newRecorded(t *testing.T, opts ...Option) (*Logger, *recordingProvider) {
	t.Helper()
	l, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec := &recordingProvider{}
	if err := l.SetProvider(rec.factory()); err != nil {
		t.Fatalf("SetProvider() error = %v", err)
	}
	return l, rec
}
