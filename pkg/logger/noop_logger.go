package logger

import "context"

type noopLogger struct{}

// NewNopLogger returns a logger that discards everything. Used in tests and
// as a safe default before configuration is loaded.
func NewNopLogger() Logger { return noopLogger{} }

func (noopLogger) Debug(context.Context, string, ...Fields)        {}
func (noopLogger) Info(context.Context, string, ...Fields)         {}
func (noopLogger) Warn(context.Context, string, ...Fields)         {}
func (noopLogger) Error(context.Context, string, error, ...Fields) {}
func (noopLogger) Fatal(context.Context, string, error, ...Fields) {}
func (n noopLogger) WithFields(Fields) Logger                      { return n }
