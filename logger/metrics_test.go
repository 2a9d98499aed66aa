package logger

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsProvider_CountsDispatchedLines(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := &recordingProvider{}
	mp, err := NewMetricsProvider(rec, reg)
	require.NoError(t, err)

	l, err := New(WithLevel(WarnLevel))
	require.NoError(t, err)
	require.NoError(t, l.SetProvider(func() Provider { return mp }))

	require.NoError(t, l.Info("filtered"))
	require.NoError(t, l.Warn("one"))
	require.NoError(t, l.Error("two"))
	require.NoError(t, l.Error("three"))
	require.NoError(t, l.Log("four"))

	count, err := testutil.GatherAndCount(reg, "console_lines_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "filtered levels should not create a series")

	assert.Equal(t, 1.0, testutil.ToFloat64(mp.Lines().WithLabelValues("warn")))
	assert.Equal(t, 2.0, testutil.ToFloat64(mp.Lines().WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mp.Lines().WithLabelValues("log")))
	assert.Len(t, rec.all(), 4, "lines should still reach the wrapped provider")
}

func TestMetricsProvider_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetricsProvider(&recordingProvider{}, reg)
	require.NoError(t, err)

	_, err = NewMetricsProvider(&recordingProvider{}, reg)
	assert.Error(t, err)
}

func TestMetricsProvider_NilInner(t *testing.T) {
	_, err := NewMetricsProvider(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
