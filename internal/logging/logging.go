package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

// String returns the name used for the level in usage messages.
func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	}
	return "Unknown"
}

// zapLevel maps a verbosity level onto the minimum zap level that is emitted.
// Off maps above every level zap can log at.
func (v VerbosityLevel) zapLevel() zapcore.Level {
	switch v {
	case Verbose:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	}
	return zapcore.FatalLevel + 1
}

// New builds a console logger writing to w. Records below the verbosity are dropped.
func New(w io.Writer, verbosity VerbosityLevel) *zap.Logger {
	if verbosity == Off {
		return zap.NewNop()
	}
	config := zap.NewProductionEncoderConfig()
	// No timestamps.
	config.TimeKey = ""
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(zapcore.AddSync(w)),
		verbosity.zapLevel(),
	))
}
