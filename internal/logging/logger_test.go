package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range cases {
		require.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestTextLogger_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(LevelWarn, buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
}

func TestTextLogger_EmitsLevelTagAndFormattedMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(LevelDebug, buf)

	log.Info("count: %d, name: %s", 42, "ridge")

	out := buf.String()
	require.Contains(t, out, "[INFO]")
	require.Contains(t, out, "count: 42, name: ridge")
}

func TestTextLogger_WithFieldDoesNotMutateReceiver(t *testing.T) {
	buf := &bytes.Buffer{}
	base := New(LevelInfo, buf)

	derived := base.WithField("input", "dem.bin")
	derived.Info("decoded")
	base.Info("unrelated")

	out := buf.String()
	require.Contains(t, out, "input=dem.bin")
	require.Contains(t, out, "decoded")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	require.NotContains(t, string(lines[1]), "input=dem.bin")
}

func TestTextLogger_WithFieldChainsAdditively(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(LevelInfo, buf).WithField("input", "dem.bin").WithField("format", "binary")

	log.Info("decoding")

	out := buf.String()
	require.Contains(t, out, "input=dem.bin")
	require.Contains(t, out, "format=binary")
}
