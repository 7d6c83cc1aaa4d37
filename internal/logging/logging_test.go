package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityLevel_ZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Verbose.zapLevel())
	assert.Equal(t, zapcore.WarnLevel, Warning.zapLevel())
	assert.True(t, Off.zapLevel() > zapcore.FatalLevel)
}

func TestNew_FiltersBelowVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Warning)

	logger.Info("compared files")
	logger.Warn("cannot open input")

	out := buf.String()
	assert.NotContains(t, out, "compared files")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "cannot open input")
}

func TestNew_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Off)

	logger.Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestVerbosityLevel_String(t *testing.T) {
	assert.Equal(t, "Warning", Warning.String())
	assert.Equal(t, "Unknown", VerbosityLevel(42).String())
}
