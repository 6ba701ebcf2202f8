package interfaces

import "context"

// Logger is the leveled logging contract used by posts and the module runtime.
// Its method set matches github.com/goliatone/go-logger so that package can be
// adapted with a thin wrapper.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension returning a logger that adds the
// supplied fields to every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
