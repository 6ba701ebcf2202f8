package domain

import "testing"

func TestNormalizeWorkflowState(t *testing.T) {
	cases := []struct {
		input string
		want  WorkflowState
	}{
		{input: "", want: WorkflowStateDraft},
		{input: "   ", want: WorkflowStateDraft},
		{input: "Draft", want: WorkflowStateDraft},
		{input: "pending_review", want: WorkflowStatePendingReview},
		{input: "Pending Review", want: WorkflowStatePendingReview},
		{input: "pending-review", want: WorkflowStatePendingReview},
		{input: "review", want: WorkflowStatePendingReview},
		{input: " PUBLISHED ", want: WorkflowStatePublished},
		{input: "archived", want: WorkflowState("archived")},
	}

	for _, tc := range cases {
		if got := NormalizeWorkflowState(tc.input); got != tc.want {
			t.Fatalf("NormalizeWorkflowState(%q): want %q got %q", tc.input, tc.want, got)
		}
	}
}
