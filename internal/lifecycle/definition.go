package lifecycle

import "github.com/goliatone/go-post/internal/domain"

// Describe returns the listing metadata for a lifecycle state. Terminal is
// derived from the state itself: a state is terminal when neither transition
// request moves it.
func Describe(state State) domain.StateDefinition {
	if state == nil {
		return domain.StateDefinition{}
	}
	return domain.StateDefinition{
		Name:        state.Name(),
		Description: describeState(state),
		Terminal:    IsTerminal(state),
	}
}

// IsTerminal reports whether no transition request leaves the state.
func IsTerminal(state State) bool {
	if state == nil {
		return false
	}
	name := state.Name()
	return state.RequestReview().Name() == name && state.Approve().Name() == name
}

// Definitions lists the states reachable from Initial in discovery order.
func Definitions() []domain.StateDefinition {
	seen := map[domain.WorkflowState]struct{}{}
	var out []domain.StateDefinition
	queue := []State{Initial()}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := seen[current.Name()]; ok {
			continue
		}
		seen[current.Name()] = struct{}{}
		out = append(out, Describe(current))
		queue = append(queue, current.RequestReview(), current.Approve())
	}
	return out
}

type describer interface {
	Description() string
}

func describeState(state State) string {
	if d, ok := state.(describer); ok {
		return d.Description()
	}
	return ""
}

func (Draft) Description() string         { return "Draft content awaiting review" }
func (PendingReview) Description() string { return "Under editorial review" }
func (Published) Description() string     { return "Published and visible" }
