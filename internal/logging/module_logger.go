package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-post/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	rootModule      = "post"
	lifecycleModule = "post.lifecycle"
	runtimeModule   = "post.runtime"
)

const (
	fieldModule     = "module"
	fieldPostID     = "post_id"
	fieldPostState  = "state"
	fieldTransition = "transition"
)

// ModuleLogger returns a logger scoped to module with a "module" field
// attached. A nil provider, or one returning nil, yields the no-op logger.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		fieldModule: module,
	})
}

// LifecycleLogger returns the namespace used by posts for transition events.
func LifecycleLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, lifecycleModule)
}

// RuntimeLogger returns the namespace used by module bootstrap.
func RuntimeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, runtimeModule)
}

// WithPostContext enriches logger with the post identifier and, when set, its
// current state.
func WithPostContext(logger interfaces.Logger, id uuid.UUID, state string) interfaces.Logger {
	fields := map[string]any{}
	if id != uuid.Nil {
		fields[fieldPostID] = id.String()
	}
	if trimmed := strings.TrimSpace(state); trimmed != "" {
		fields[fieldPostState] = trimmed
	}
	return WithFields(logger, fields)
}

// TransitionFields builds the structured arguments logged for a transition request.
func TransitionFields(transition, from, to string) []any {
	return []any{
		fieldTransition, transition,
		"from", from,
		"to", to,
	}
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
