package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxAgeDays defines how long rotated log files are kept
	DefaultMaxAgeDays = 15

	// DefaultMaxSizeMB defines the maximum size of a log file before rotation
	DefaultMaxSizeMB = 100

	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = InfoLevel
)

// Config holds the logger configuration options
type Config struct {
	LogLevel LogLevel

	// FilePath specifies where to write the log file
	FilePath string

	MaxSizeMB  int
	MaxAgeDays int

	// UseConsole determines if logs are also written to stdout
	UseConsole bool

	Development bool
}

// ZapLogger provides a concrete implementation of the Logger using zap.
type ZapLogger struct {
	zap *zap.Logger
	cfg Config
}

// Compile-time check to ensure ZapLogger implements the Logger.
var _ Logger = (*ZapLogger)(nil)

// NewZapLogger creates a new Zap logger satisfying the Logger interface.
func NewZapLogger(config Config) (Logger, error) {
	zapLogger, err := buildZapLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &ZapLogger{
		zap: zapLogger,
		cfg: config,
	}, nil
}

// buildZapLogger sets up the underlying zap logger instance.
func buildZapLogger(config Config) (*zap.Logger, error) {
	if config.MaxAgeDays <= 0 {
		config.MaxAgeDays = DefaultMaxAgeDays
	}
	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = DefaultMaxSizeMB
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	level := parseLogLevel(config.LogLevel)

	encoderConfig := zap.NewProductionEncoderConfig()
	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderConfig.EncodeDuration = zapcore.SecondsDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var cores []zapcore.Core

	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(config.FilePath), err)
		}

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename: config.FilePath,
			MaxSize:  config.MaxSizeMB,
			MaxAge:   config.MaxAgeDays,
			Compress: true,
		})

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		))
	}

	if config.UseConsole {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	core := zapcore.NewTee(cores...)

	zapOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if config.Development {
		zapOpts = append(zapOpts, zap.Development())
	}

	return zap.New(core, zapOpts...), nil
}

func mapToZapFields(fields map[string]interface{}) []zap.Field {
	if fields == nil {
		return nil
	}
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs a message at debug level
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.zap.Debug(msg, mapToZapFields(fields)...)
}

// Info logs a message at info level
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.zap.Info(msg, mapToZapFields(fields)...)
}

// Warn logs a message at warn level
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.zap.Warn(msg, mapToZapFields(fields)...)
}

// Error logs a message at error level
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.zap.Error(msg, mapToZapFields(fields)...)
}

// Fatal logs a message at fatal level and exits
func (l *ZapLogger) Fatal(msg string, fields map[string]interface{}) {
	l.zap.Fatal(msg, mapToZapFields(fields)...)
}

// Debugf logs a formatted message at debug level
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.zap.Sugar().Debugf(format, args...)
}

// Infof logs a formatted message at info level
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.zap.Sugar().Infof(format, args...)
}

// Warnf logs a formatted message at warn level
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.zap.Sugar().Warnf(format, args...)
}

// Errorf logs a formatted message at error level
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.zap.Sugar().Errorf(format, args...)
}

// Fatalf logs a formatted message at fatal level and exits
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.zap.Sugar().Fatalf(format, args...)
}

// WithField adds a single structured field to the logger context.
func (l *ZapLogger) WithField(key string, value interface{}) Logger {
	return &ZapLogger{
		zap: l.zap.With(zap.Any(key, value)),
		cfg: l.cfg,
	}
}

// WithFields creates a new logger instance with additional fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) Logger {
	if len(fields) == 0 {
		return l
	}
	return &ZapLogger{
		zap: l.zap.With(mapToZapFields(fields)...),
		cfg: l.cfg,
	}
}

// Sync flushes any buffered log entries
func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}

func parseLogLevel(levelStr LogLevel) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
