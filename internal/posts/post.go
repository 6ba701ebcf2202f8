package posts

import (
	"github.com/goliatone/go-post/internal/domain"
	"github.com/goliatone/go-post/internal/lifecycle"
	"github.com/goliatone/go-post/internal/logging"
	"github.com/goliatone/go-post/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	transitionRequestReview = "request_review"
	transitionApprove       = "approve"
)

// Post is a single document moving through draft, review and publication.
// Content is only visible once published. The zero value is an empty draft
// that logs nothing. A Post is not safe for concurrent use; callers sharing
// one across goroutines must serialise access.
type Post struct {
	id      uuid.UUID
	state   lifecycle.State
	content string
	logger  interfaces.Logger
}

// body adapts the accumulated text to lifecycle.Body.
type body string

func (b body) String() string { return string(b) }

// Option configures a Post.
type Option func(*Post)

// WithLogger sets the logger receiving transition events.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Post) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithID overrides the generated identifier.
func WithID(id uuid.UUID) Option {
	return func(p *Post) {
		if id != uuid.Nil {
			p.id = id
		}
	}
}

// New returns an empty draft post.
func New(opts ...Option) *Post {
	p := &Post{
		id:     uuid.New(),
		state:  lifecycle.Initial(),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.logger = logging.WithPostContext(p.logger, p.id, "")
	p.logger.Debug("post.created", "state", p.state.Name().String())
	return p
}

// ID identifies the post in log entries.
func (p *Post) ID() uuid.UUID {
	return p.id
}

// State reports the current lifecycle state.
func (p *Post) State() domain.WorkflowState {
	return p.current().Name()
}

// AddText appends text to the body in any state.
func (p *Post) AddText(text string) {
	p.content += text
	p.log().Trace("post.text_added", "bytes", len(text), "state", p.current().Name().String())
}

// Content returns what the current state allows readers to see.
func (p *Post) Content() string {
	return p.current().Content(body(p.content))
}

// RequestReview asks for the post to move into review.
func (p *Post) RequestReview() {
	p.transition(transitionRequestReview, lifecycle.State.RequestReview)
}

// Approve asks for the post to be published.
func (p *Post) Approve() {
	p.transition(transitionApprove, lifecycle.State.Approve)
}

func (p *Post) transition(name string, event func(lifecycle.State) lifecycle.State) {
	from := p.current()
	to := event(from)
	if to == nil {
		to = from
	}
	p.state = to

	fields := logging.TransitionFields(name, from.Name().String(), to.Name().String())
	if from.Name() == to.Name() {
		p.log().Debug("post.transition.ignored", fields...)
		return
	}
	p.log().Debug("post.transition", fields...)
}

// current resolves a missing state to the initial one, so a zero-value Post
// behaves as a fresh draft.
func (p *Post) current() lifecycle.State {
	if p.state == nil {
		return lifecycle.Initial()
	}
	return p.state
}

func (p *Post) log() interfaces.Logger {
	if p.logger == nil {
		return logging.NoOp()
	}
	return p.logger
}
