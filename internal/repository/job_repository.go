package repository

import "github.com/spoolsim/spoolsim/internal/domain"

// JobRepository is the canonical, unsorted queue of submitted jobs.
// Insertion order is arrival order. Implementations must be safe for
// concurrent use.
type JobRepository interface {
	// Add appends a new job with a freshly assigned id. It returns
	// domain.ErrCapacityExceeded when the queue is full and
	// domain.ErrInvalidJobParameters when pageCount or priority is
	// non-positive; in both cases the queue and the id counter are
	// left untouched.
	Add(pageCount, priority int) (domain.Job, error)

	// List returns a snapshot of the queue in arrival order. The
	// returned slice is a copy; mutating it never affects the queue.
	List() []domain.Job

	// Len reports the number of queued jobs.
	Len() int

	// IsEmpty reports whether the queue holds no jobs.
	IsEmpty() bool
}
