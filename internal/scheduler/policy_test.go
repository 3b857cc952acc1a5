package scheduler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spoolsim/spoolsim/internal/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: 1, PageCount: 10, Priority: 2},
		{ID: 2, PageCount: 5, Priority: 1},
		{ID: 3, PageCount: 20, Priority: 3},
	}
}

func ids(jobs []domain.Job) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestOrderFCFS_PreservesArrivalOrder(t *testing.T) {
	ordered, err := Order(domain.PolicyFCFS, sampleJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ordered); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected arrival order [1 2 3], got %v", got)
	}
}

func TestOrderSJF_SortsByPageCount(t *testing.T) {
	ordered, err := Order(domain.PolicySJF, sampleJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ordered); !reflect.DeepEqual(got, []int{2, 1, 3}) {
		t.Errorf("expected order [2 1 3], got %v", got)
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].PageCount < ordered[i-1].PageCount {
			t.Errorf("page counts not non-decreasing at index %d: %v", i, ordered)
		}
	}
}

func TestOrderSJF_EqualPagesKeepArrivalOrder(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, PageCount: 10, Priority: 3},
		{ID: 2, PageCount: 10, Priority: 1},
		{ID: 3, PageCount: 10, Priority: 2},
		{ID: 4, PageCount: 5, Priority: 1},
	}

	ordered, err := Order(domain.PolicySJF, jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ordered); !reflect.DeepEqual(got, []int{4, 1, 2, 3}) {
		t.Errorf("expected order [4 1 2 3], got %v", got)
	}
}

func TestOrderPriority_SortsByPriority(t *testing.T) {
	ordered, err := Order(domain.PolicyPriority, sampleJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ordered); !reflect.DeepEqual(got, []int{2, 1, 3}) {
		t.Errorf("expected order [2 1 3], got %v", got)
	}
}

func TestOrderPriority_EqualPrioritiesKeepArrivalOrder(t *testing.T) {
	jobs := []domain.Job{
		{ID: 1, PageCount: 30, Priority: 2},
		{ID: 2, PageCount: 10, Priority: 2},
		{ID: 3, PageCount: 20, Priority: 1},
		{ID: 4, PageCount: 40, Priority: 2},
	}

	ordered, err := Order(domain.PolicyPriority, jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(ordered); !reflect.DeepEqual(got, []int{3, 1, 2, 4}) {
		t.Errorf("expected order [3 1 2 4], got %v", got)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	input := sampleJobs()
	want := sampleJobs()

	for _, policy := range domain.Policies() {
		if _, err := Order(policy, input); err != nil {
			t.Fatalf("unexpected error for %s: %v", policy, err)
		}
		if !reflect.DeepEqual(input, want) {
			t.Fatalf("policy %s mutated its input: %v", policy, input)
		}
	}
}

func TestOrder_EmptyInput(t *testing.T) {
	for _, policy := range domain.Policies() {
		ordered, err := Order(policy, nil)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", policy, err)
		}
		if len(ordered) != 0 {
			t.Errorf("expected empty output for %s, got %v", policy, ordered)
		}
	}
}

func TestOrder_UnknownPolicy(t *testing.T) {
	_, err := Order(domain.Policy("round-robin"), sampleJobs())
	if !errors.Is(err, domain.ErrUnknownPolicy) {
		t.Errorf("expected ErrUnknownPolicy, got %v", err)
	}
}
