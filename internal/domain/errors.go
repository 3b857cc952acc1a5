package domain

import "errors"

var (
	// ErrInvalidJobParameters is returned when a submission carries a
	// non-positive page count or priority. The job is not added and the
	// repository's id counter does not advance.
	ErrInvalidJobParameters = errors.New("page count and priority must be positive")

	// ErrCapacityExceeded is returned when the queue already holds the
	// configured maximum number of jobs.
	ErrCapacityExceeded = errors.New("print queue is full")

	// ErrEmptyQueue is returned when a simulation is requested against an
	// empty queue.
	ErrEmptyQueue = errors.New("print queue is empty")

	// ErrUnknownPolicy is returned when a simulation names a discipline
	// that is not supported.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
)
