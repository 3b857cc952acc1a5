// Package simulator derives wait and turnaround metrics from an ordered
// job sequence by walking a single advancing printer clock.
package simulator

import "github.com/spoolsim/spoolsim/internal/domain"

// Simulate processes jobs strictly in the order given; the order already
// encodes the policy's decision, so the same walk serves all disciplines.
// All jobs are assumed submitted at time 0, so a job's wait is exactly the
// service time of everything scheduled before it. Returns
// domain.ErrEmptyQueue for an empty sequence.
func Simulate(policy domain.Policy, ordered []domain.Job) (*domain.Report, error) {
	if len(ordered) == 0 {
		return nil, domain.ErrEmptyQueue
	}

	var (
		clock           int
		totalWait       int
		totalTurnaround int
	)
	records := make([]domain.JobMetrics, 0, len(ordered))

	for _, job := range ordered {
		wait := clock
		turnaround := wait + job.PageCount

		totalWait += wait
		totalTurnaround += turnaround
		clock += job.PageCount

		records = append(records, domain.JobMetrics{
			JobID:          job.ID,
			PageCount:      job.PageCount,
			Priority:       job.Priority,
			WaitTime:       wait,
			TurnaroundTime: turnaround,
		})
	}

	n := float64(len(ordered))
	return &domain.Report{
		Policy:            policy,
		Jobs:              records,
		AvgWaitTime:       float64(totalWait) / n,
		AvgTurnaroundTime: float64(totalTurnaround) / n,
	}, nil
}
