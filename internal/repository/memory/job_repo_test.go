package memory

import (
	"errors"
	"testing"

	"github.com/spoolsim/spoolsim/internal/domain"
)

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	repo := NewJobRepository(10)

	first, err := repo.Add(10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Add(5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 {
		t.Errorf("expected first job id 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("expected second job id 2, got %d", second.ID)
	}

	jobs := repo.List()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != 1 || jobs[1].ID != 2 {
		t.Errorf("expected arrival order [1 2], got [%d %d]", jobs[0].ID, jobs[1].ID)
	}
}

func TestAdd_InvalidParameters(t *testing.T) {
	repo := NewJobRepository(10)

	cases := []struct {
		name      string
		pageCount int
		priority  int
	}{
		{"zero pages", 0, 1},
		{"negative pages", -5, 1},
		{"zero priority", 10, 0},
		{"negative priority", 10, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Add(tc.pageCount, tc.priority)
			if !errors.Is(err, domain.ErrInvalidJobParameters) {
				t.Errorf("expected ErrInvalidJobParameters, got %v", err)
			}
		})
	}

	if !repo.IsEmpty() {
		t.Errorf("expected empty repository after rejected adds, got %d jobs", repo.Len())
	}
}

func TestAdd_RollsBackIDOnRejection(t *testing.T) {
	repo := NewJobRepository(10)

	if _, err := repo.Add(10, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Add(0, 1); !errors.Is(err, domain.ErrInvalidJobParameters) {
		t.Fatalf("expected ErrInvalidJobParameters, got %v", err)
	}

	// The next accepted job must receive the id the rejected one would have.
	job, err := repo.Add(5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != 2 {
		t.Errorf("expected id 2 after rollback, got %d", job.ID)
	}
}

func TestAdd_CapacityExceeded(t *testing.T) {
	repo := NewJobRepository(2)

	for i := 0; i < 2; i++ {
		if _, err := repo.Add(10, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	_, err := repo.Add(10, 1)
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if repo.Len() != 2 {
		t.Errorf("expected 2 jobs after rejected add, got %d", repo.Len())
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	repo := NewJobRepository(10)
	if _, err := repo.Add(10, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := repo.List()
	snapshot[0].PageCount = 999

	fresh := repo.List()
	if fresh[0].PageCount != 10 {
		t.Errorf("mutating a snapshot leaked into the repository: got %d pages", fresh[0].PageCount)
	}
}

func TestIsEmpty(t *testing.T) {
	repo := NewJobRepository(10)
	if !repo.IsEmpty() {
		t.Error("expected a new repository to be empty")
	}
	if _, err := repo.Add(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.IsEmpty() {
		t.Error("expected non-empty repository after add")
	}
}
