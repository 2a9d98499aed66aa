package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_AllFields(t *testing.T) {
	path := writeConfig(t, "colour: false\ntimeStamp: true\nprefix: false\nlogLevel: debug\n")

	opts, err := LoadConfig(path)
	require.NoError(t, err)

	o := resolveOptions(opts)
	assert.Equal(t, Options{Colour: false, TimeStamp: true, Prefix: false, Level: DebugLevel}, o)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	resetDefaultLevel(t)
	t.Setenv(levelEnv, "")
	path := writeConfig(t, "timeStamp: true\n")

	opts, err := LoadConfig(path)
	require.NoError(t, err)

	o := resolveOptions(opts)
	assert.True(t, o.Colour)
	assert.True(t, o.TimeStamp)
	assert.True(t, o.Prefix)
	assert.Equal(t, WarnLevel, o.Level)
}

func TestLoadConfig_InvalidLevel(t *testing.T) {
	for _, level := range []string{"loud", "log"} {
		t.Run(level, func(t *testing.T) {
			path := writeConfig(t, "logLevel: "+level+"\n")
			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "colour: [not, a, bool\n")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_FeedsRegistry(t *testing.T) {
	path := writeConfig(t, "logLevel: error\ntimeStamp: true\n")
	opts, err := LoadConfig(path)
	require.NoError(t, err)

	reg := NewRegistry()
	a, err := reg.Get(opts...)
	require.NoError(t, err)
	b, err := reg.Get(WithLevel(ErrorLevel), WithTimeStamp(true))
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestReloadLevel(t *testing.T) {
	l, rec := newRecorded(t, WithLevel(ErrorLevel))
	path := writeConfig(t, "logLevel: info\n")

	require.NoError(t, l.ReloadLevel(path))
	assert.Equal(t, InfoLevel, l.Level())

	require.NoError(t, l.Info("after reload"))
	assert.Len(t, rec.all(), 1)
}

func TestReloadLevel_NoLevelIsNoop(t *testing.T) {
	l, _ := newRecorded(t, WithLevel(ErrorLevel))
	path := writeConfig(t, "colour: false\n")

	require.NoError(t, l.ReloadLevel(path))
	assert.Equal(t, ErrorLevel, l.Level())
}

func TestReloadLevel_InvalidKeepsPrevious(t *testing.T) {
	l, _ := newRecorded(t, WithLevel(ErrorLevel))
	path := writeConfig(t, "logLevel: verbose\n")

	assert.ErrorIs(t, l.ReloadLevel(path), ErrInvalidLevel)
	assert.Equal(t, ErrorLevel, l.Level())
}
