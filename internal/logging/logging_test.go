package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, LevelFromEnv())
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrintf(New(&buf, Options{Level: slog.LevelInfo, NoColor: true}))

	p.Debugf("hidden %d", 1)
	p.Infof("ran %d scenarios", 3)
	p.Warnf("excluded %d runs", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ran 3 scenarios")
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "excluded 2 runs")
	assert.Contains(t, out, "WRN")
}
