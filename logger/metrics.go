package logger

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsProvider counts the lines written per level before handing them to
// the wrapped provider.
type MetricsProvider struct {
	inner Provider
	lines *prometheus.CounterVec
}

// NewMetricsProvider wraps inner and registers console_lines_total on reg.
// A nil reg skips registration.
func NewMetricsProvider(inner Provider, reg prometheus.Registerer) (*MetricsProvider, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: inner provider is nil", ErrInvalidArgument)
	}
	lines := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_lines_total",
			Help: "Total number of lines written to the console provider",
		},
		[]string{"level"},
	)
	if reg != nil {
		if err := reg.Register(lines); err != nil {
			return nil, err
		}
	}
	return &MetricsProvider{inner: inner, lines: lines}, nil
}

// Lines exposes the underlying counter.
func (m *MetricsProvider) Lines() *prometheus.CounterVec {
	return m.lines
}

// Log counts the line and forwards it to the wrapped provider.
func (m *MetricsProvider) Log(msg string) {
	m.count(LogLevel)
	m.inner.Log(msg)
}

// Debug counts the line and forwards it to the wrapped provider.
func (m *MetricsProvider) Debug(msg string) {
	m.count(DebugLevel)
	m.inner.Debug(msg)
}

// Info counts the line and forwards it to the wrapped provider.
func (m *MetricsProvider) Info(msg string) {
	m.count(InfoLevel)
	m.inner.Info(msg)
}

// Warn counts the line and forwards it to the wrapped provider.
func (m *MetricsProvider) Warn(msg string) {
	m.count(WarnLevel)
	m.inner.Warn(msg)
}

// Error counts the line and forwards it to the wrapped provider.
func (m *MetricsProvider) Error(msg string) {
	m.count(ErrorLevel)
	m.inner.Error(msg)
}

func (m *MetricsProvider) count(level Level) {
	m.lines.WithLabelValues(level.String()).Inc()
}
