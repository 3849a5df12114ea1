package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects how chatty the logger is.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
	LevelQuiet
)

// LevelFromFlags maps the --debug and --quiet flags to a Level. Debug wins if both
// are set.
func LevelFromFlags(debug, quiet bool) Level {
	switch {
	case debug:
		return LevelDebug
	case quiet:
		return LevelQuiet
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelQuiet:
		return "quiet"
	default:
		return "info"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelQuiet:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a console logger writing to w.
func New(level Level, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level.zapLevel(),
	)

	return zap.New(core)
}
