package core

import "context"

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) InfoContext(context.Context, string, ...any) {}
func (nopLogger) ErrorContext(context.Context, string, ...any) {}
