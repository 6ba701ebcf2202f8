package lifecycle

import (
	"strings"
	"testing"

	"github.com/goliatone/go-post/internal/domain"
)

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		name              string
		state             State
		wantRequestReview domain.WorkflowState
		wantApprove       domain.WorkflowState
	}{
		{name: "draft", state: Draft{}, wantRequestReview: domain.WorkflowStatePendingReview, wantApprove: domain.WorkflowStateDraft},
		{name: "pending review", state: PendingReview{}, wantRequestReview: domain.WorkflowStatePendingReview, wantApprove: domain.WorkflowStatePublished},
		{name: "published", state: Published{}, wantRequestReview: domain.WorkflowStatePublished, wantApprove: domain.WorkflowStatePublished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.RequestReview().Name(); got != tc.wantRequestReview {
				t.Fatalf("RequestReview: want %s got %s", tc.wantRequestReview, got)
			}
			if got := tc.state.Approve().Name(); got != tc.wantApprove {
				t.Fatalf("Approve: want %s got %s", tc.wantApprove, got)
			}
		})
	}
}

func TestStateContentVisibility(t *testing.T) {
	var body strings.Builder
	body.WriteString("I ate a salad for lunch today")

	if got := (Draft{}).Content(&body); got != "" {
		t.Fatalf("draft content: expected empty, got %q", got)
	}
	if got := (PendingReview{}).Content(&body); got != "" {
		t.Fatalf("pending review content: expected empty, got %q", got)
	}
	if got := (Published{}).Content(&body); got != "I ate a salad for lunch today" {
		t.Fatalf("published content: unexpected %q", got)
	}
	if got := (Published{}).Content(nil); got != "" {
		t.Fatalf("published content with nil body: expected empty, got %q", got)
	}
}

func TestInitialIsDraft(t *testing.T) {
	if got := Initial().Name(); got != domain.WorkflowStateDraft {
		t.Fatalf("expected initial state draft, got %s", got)
	}
}

func TestDefinitionsWalkReachableStates(t *testing.T) {
	got := Definitions()
	want := []domain.StateDefinition{
		{Name: domain.WorkflowStateDraft, Description: "Draft content awaiting review"},
		{Name: domain.WorkflowStatePendingReview, Description: "Under editorial review"},
		{Name: domain.WorkflowStatePublished, Description: "Published and visible", Terminal: true},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d definitions, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("definition %d: want %+v got %+v", i, want[i], got[i])
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(Draft{}) || IsTerminal(PendingReview{}) {
		t.Fatal("expected draft and pending review to be non-terminal")
	}
	if !IsTerminal(Published{}) {
		t.Fatal("expected published to be terminal")
	}
	if IsTerminal(nil) {
		t.Fatal("expected nil state to be non-terminal")
	}
}
