package logger

// NoOpLogger is a logger implementation that performs no actions.
// Useful for tests or for disabling logging entirely.
type NoOpLogger struct{}

// Discard is a ready-to-use NoOpLogger instance.
var Discard Logger = NoOpLogger{}

// NewNoOpLogger returns a logger instance that performs no operations.
func NewNoOpLogger() Logger {
	return Discard
}

// Debug performs no action.
func (l NoOpLogger) Debug(msg string, fields map[string]interface{}) {}

// Info performs no action.
func (l NoOpLogger) Info(msg string, fields map[string]interface{}) {}

// Warn performs no action.
func (l NoOpLogger) Warn(msg string, fields map[string]interface{}) {}

// Error performs no action.
func (l NoOpLogger) Error(msg string, fields map[string]interface{}) {}

// Fatal performs no action. Unlike typical Fatal loggers, it does NOT exit.
func (l NoOpLogger) Fatal(msg string, fields map[string]interface{}) {}

// Debugf performs no action.
func (l NoOpLogger) Debugf(format string, args ...interface{}) {}

// Infof performs no action.
func (l NoOpLogger) Infof(format string, args ...interface{}) {}

// Warnf performs no action.
func (l NoOpLogger) Warnf(format string, args ...interface{}) {}

// Errorf performs no action.
func (l NoOpLogger) Errorf(format string, args ...interface{}) {}

// Fatalf performs no action.
func (l NoOpLogger) Fatalf(format string, args ...interface{}) {}

// WithField returns the same NoOpLogger instance.
func (l NoOpLogger) WithField(key string, value interface{}) Logger {
	return l
}

// WithFields returns the same NoOpLogger instance.
func (l NoOpLogger) WithFields(fields map[string]interface{}) Logger {
	return l
}

// Sync performs no action and returns nil.
func (l NoOpLogger) Sync() error {
	return nil
}

var _ Logger = NoOpLogger{}
