package memory

import (
	"sync"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/repository"
)

// Ensure JobRepository implements repository.JobRepository.
var _ repository.JobRepository = (*JobRepository)(nil)

// JobRepository is the in-memory job queue. It lives for the process
// lifetime and is only ever mutated by Add; simulations operate on
// snapshots and can never reorder it.
type JobRepository struct {
	mu       sync.RWMutex
	jobs     []domain.Job
	capacity int
	nextID   int
}

// NewJobRepository creates an empty queue bounded at capacity jobs,
// with the id counter seeded at 1.
func NewJobRepository(capacity int) *JobRepository {
	return &JobRepository{
		jobs:     make([]domain.Job, 0, capacity),
		capacity: capacity,
		nextID:   1,
	}
}

// Add appends a new job in arrival order. The id counter advances only on
// success: a rejected submission leaves the counter where it was, so the
// next accepted job receives the id the rejected one would have taken.
func (r *JobRepository) Add(pageCount, priority int) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.jobs) >= r.capacity {
		return domain.Job{}, domain.ErrCapacityExceeded
	}
	if pageCount <= 0 || priority <= 0 {
		return domain.Job{}, domain.ErrInvalidJobParameters
	}

	job := domain.Job{
		ID:        r.nextID,
		PageCount: pageCount,
		Priority:  priority,
	}
	r.nextID++
	r.jobs = append(r.jobs, job)
	return job, nil
}

// List returns a copy of the queue in arrival order.
func (r *JobRepository) List() []domain.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]domain.Job, len(r.jobs))
	copy(snapshot, r.jobs)
	return snapshot
}

// Len reports the number of queued jobs.
func (r *JobRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// IsEmpty reports whether the queue holds no jobs.
func (r *JobRepository) IsEmpty() bool {
	return r.Len() == 0
}
