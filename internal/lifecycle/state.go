package lifecycle

import "github.com/goliatone/go-post/internal/domain"

// Body exposes the accumulated text of a post to the state deciding its visibility.
type Body interface {
	String() string
}

// State is one stage of the post lifecycle. Each implementation decides its own
// transition targets and what content is visible while it is current. Transitions
// never mutate the receiver; they return the state the post moves to, which may
// be the receiver itself when the request does not apply.
type State interface {
	Name() domain.WorkflowState
	RequestReview() State
	Approve() State
	Content(body Body) string
}

// Initial returns the state every new post starts in.
func Initial() State {
	return Draft{}
}

// Draft is a post still being written. Nothing is visible.
type Draft struct{}

var _ State = Draft{}

func (Draft) Name() domain.WorkflowState { return domain.WorkflowStateDraft }

// RequestReview submits the draft for review.
func (Draft) RequestReview() State { return PendingReview{} }

// Approve is ignored: a draft has to be reviewed first.
func (d Draft) Approve() State { return d }

func (Draft) Content(Body) string { return "" }

// PendingReview is a post waiting for an editor. Nothing is visible.
type PendingReview struct{}

var _ State = PendingReview{}

func (PendingReview) Name() domain.WorkflowState { return domain.WorkflowStatePendingReview }

func (p PendingReview) RequestReview() State { return p }

// Approve publishes the post.
func (PendingReview) Approve() State { return Published{} }

func (PendingReview) Content(Body) string { return "" }

// Published is terminal. The full body is visible and read live on every call.
type Published struct{}

var _ State = Published{}

func (Published) Name() domain.WorkflowState { return domain.WorkflowStatePublished }

func (p Published) RequestReview() State { return p }

func (p Published) Approve() State { return p }

func (Published) Content(body Body) string {
	if body == nil {
		return ""
	}
	return body.String()
}
