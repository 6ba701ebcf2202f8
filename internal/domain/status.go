package domain

import "strings"

// WorkflowState names a stage of the post lifecycle.
type WorkflowState string

const (
	// WorkflowStateDraft marks a post still being written.
	WorkflowStateDraft WorkflowState = "draft"
	// WorkflowStatePendingReview marks a post submitted for editorial review.
	WorkflowStatePendingReview WorkflowState = "pending_review"
	// WorkflowStatePublished marks a post whose content is visible.
	WorkflowStatePublished WorkflowState = "published"
)

// String implements fmt.Stringer.
func (s WorkflowState) String() string {
	return string(s)
}

// StateDefinition describes a lifecycle state for diagnostics and listings.
type StateDefinition struct {
	Name        WorkflowState
	Description string
	Terminal    bool
}

// NormalizeWorkflowState coerces arbitrary state strings into a known representation.
// Blank input resolves to draft; common spellings of the review state are folded
// into pending_review.
func NormalizeWorkflowState(input string) WorkflowState {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return WorkflowStateDraft
	}
	trimmed = strings.NewReplacer("-", "_", " ", "_").Replace(trimmed)
	switch WorkflowState(trimmed) {
	case "review", "pendingreview", "pending":
		return WorkflowStatePendingReview
	default:
		return WorkflowState(trimmed)
	}
}
