// Package scheduler implements the three non-preemptive ordering policies.
// Every policy is a pure function over a snapshot of the queue: the input
// is never mutated and the result is always a freshly allocated slice.
package scheduler

import (
	"sort"

	"github.com/spoolsim/spoolsim/internal/domain"
)

// Order arranges jobs according to the given policy. An empty input yields
// an empty output; an unsupported policy yields domain.ErrUnknownPolicy.
func Order(policy domain.Policy, jobs []domain.Job) ([]domain.Job, error) {
	ordered := make([]domain.Job, len(jobs))
	copy(ordered, jobs)

	switch policy {
	case domain.PolicyFCFS:
		// Arrival order is the schedule; nothing to sort.
	case domain.PolicySJF:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].PageCount != ordered[j].PageCount {
				return ordered[i].PageCount < ordered[j].PageCount
			}
			// Equal-length jobs resolve in arrival order.
			return ordered[i].ID < ordered[j].ID
		})
	case domain.PolicyPriority:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Priority != ordered[j].Priority {
				return ordered[i].Priority < ordered[j].Priority
			}
			// Tie-breaker: first come, first served.
			return ordered[i].ID < ordered[j].ID
		})
	default:
		return nil, domain.ErrUnknownPolicy
	}

	return ordered, nil
}
