// Package post models a single document moving through an editorial workflow:
// draft, pending review, published. Only published content is visible.
package post

import (
	"github.com/goliatone/go-post/internal/domain"
	"github.com/goliatone/go-post/internal/lifecycle"
	"github.com/goliatone/go-post/internal/posts"
	"github.com/goliatone/go-post/pkg/interfaces"
	"github.com/google/uuid"
)

// Post exports the lifecycle-managed document.
type Post = posts.Post

// Option configures a Post at construction.
type Option = posts.Option

// State names a lifecycle stage.
type State = domain.WorkflowState

// StateDefinition describes a lifecycle stage.
type StateDefinition = domain.StateDefinition

// Logger exports the logging contract accepted by WithLogger.
type Logger = interfaces.Logger

// LoggerProvider exports the provider contract accepted by WithLoggerProvider.
type LoggerProvider = interfaces.LoggerProvider

const (
	StateDraft         = domain.WorkflowStateDraft
	StatePendingReview = domain.WorkflowStatePendingReview
	StatePublished     = domain.WorkflowStatePublished
)

// New returns an empty draft post that logs nothing unless WithLogger is given.
func New(opts ...Option) *Post {
	return posts.New(opts...)
}

// WithLogger sets the logger receiving transition events.
func WithLogger(logger Logger) Option {
	return posts.WithLogger(logger)
}

// WithID fixes the post identifier used in log entries.
func WithID(id uuid.UUID) Option {
	return posts.WithID(id)
}

// States lists the lifecycle stages in the order a post reaches them.
func States() []StateDefinition {
	return lifecycle.Definitions()
}

// ParseState resolves a user-supplied state name, accepting loose spellings
// such as "Pending Review" or "review". It reports false for names outside the
// workflow.
func ParseState(name string) (State, bool) {
	state := domain.NormalizeWorkflowState(name)
	for _, def := range lifecycle.Definitions() {
		if def.Name == state {
			return state, true
		}
	}
	return "", false
}
