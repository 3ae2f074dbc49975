package logging

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/replicate/uuidtool/must"
)

var (
	baseConfig = NewConfig()
	baseLogger = must.Get(baseConfig.Build())
)

type contextKey int

const (
	contextFieldsKey contextKey = iota
)

// NewConfig returns the logger configuration selected by LOG_FORMAT and
// LOG_LEVEL. Output always goes to stderr: stdout carries command results.
func NewConfig() zap.Config {
	var config zap.Config

	development := os.Getenv("LOG_FORMAT") == "development"

	if development {
		config = newDevelopmentConfig()
	} else {
		config = newProductionConfig()
	}

	level, ok := os.LookupEnv("LOG_LEVEL")
	if ok {
		if lvl, err := parseLevel(level); err == nil {
			config.Level = lvl
		}
	}

	return config
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	// "warning" is accepted for compatibility with logrus-style settings.
	if strings.ToLower(level) == "warning" {
		level = "warn"
	}
	return zap.ParseAtomicLevel(level)
}

func newDevelopmentConfig() zap.Config {
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:       true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     newDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

func newProductionConfig() zap.Config {
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.WarnLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    newProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func newDevelopmentEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := newProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.NameKey = ""
	return encoderConfig
}

func newProductionEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New creates a new logger with a default "logger" field so we can identify the
// source of log messages.
func New(name string) *zap.Logger {
	return baseLogger.Named(name)
}

// SetLevel changes the level of every logger returned by New.
func SetLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	baseConfig.Level.SetLevel(lvl.Level())
	return nil
}

// Level reports the current level of loggers returned by New.
func Level() zapcore.Level {
	return baseConfig.Level.Level()
}

func GetFields(ctx context.Context) []zap.Field {
	f := ctx.Value(contextFieldsKey)
	if f == nil {
		return []zap.Field{}
	}
	return f.([]zap.Field)
}

func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	f := GetFields(ctx)
	f = append(f[:len(f):len(f)], fields...)
	return context.WithValue(ctx, contextFieldsKey, f)
}

// With returns logger annotated with the fields stored on ctx.
func With(ctx context.Context, logger *zap.Logger) *zap.Logger {
	return logger.With(GetFields(ctx)...)
}

// Sync flushes buffered log entries.
func Sync() error {
	return baseLogger.Sync()
}
