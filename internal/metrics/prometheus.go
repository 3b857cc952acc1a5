package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsSubmittedTotal counts jobs accepted into the queue.
	JobsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spoolsim_jobs_submitted_total",
			Help: "Total number of print jobs accepted into the queue",
		},
	)

	// JobsRejectedTotal counts rejected submissions by reason.
	JobsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spoolsim_jobs_rejected_total",
			Help: "Total number of rejected job submissions",
		},
		[]string{"reason"},
	)

	// SimulationsTotal counts simulation runs by policy.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spoolsim_simulations_total",
			Help: "Total number of completed simulation runs",
		},
		[]string{"policy"},
	)

	// QueueDepth tracks the current number of queued jobs.
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spoolsim_queue_depth",
			Help: "Current number of jobs in the print queue",
		},
	)
)
