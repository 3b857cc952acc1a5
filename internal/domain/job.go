package domain

// Policy identifies a non-preemptive scheduling discipline.
type Policy string

const (
	PolicyFCFS     Policy = "fcfs"
	PolicySJF      Policy = "sjf"
	PolicyPriority Policy = "priority"
)

// IsValid checks if the policy is one of the supported disciplines.
func (p Policy) IsValid() bool {
	return p == PolicyFCFS || p == PolicySJF || p == PolicyPriority
}

// DisplayName returns the human-readable name of the discipline.
func (p Policy) DisplayName() string {
	switch p {
	case PolicyFCFS:
		return "First-Come, First-Served (FCFS)"
	case PolicySJF:
		return "Shortest Job First (SJF)"
	case PolicyPriority:
		return "Priority Scheduling"
	default:
		return string(p)
	}
}

// Policies lists every supported discipline in menu order.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicyPriority}
}

// Job is a single print job. Immutable once created; IDs are assigned by the
// repository from a monotonically increasing counter and never reused.
type Job struct {
	ID        int `json:"job_id"`
	PageCount int `json:"page_count"` // service duration in pages ("burst time")
	Priority  int `json:"priority"`   // lower value = higher priority
}

// JobMetrics pairs a job with its simulated wait and turnaround times.
type JobMetrics struct {
	JobID          int `json:"job_id"`
	PageCount      int `json:"page_count"`
	Priority       int `json:"priority"`
	WaitTime       int `json:"wait_time"`
	TurnaroundTime int `json:"turnaround_time"`
}

// Report holds the outcome of one simulation run: per-job records in service
// order plus aggregate averages. Produced fresh per run, never persisted.
type Report struct {
	Policy            Policy       `json:"policy"`
	Jobs              []JobMetrics `json:"jobs"`
	AvgWaitTime       float64      `json:"avg_wait_time"`
	AvgTurnaroundTime float64      `json:"avg_turnaround_time"`
}

// SubmitRequest is an incoming job submission from a front end.
type SubmitRequest struct {
	PageCount int `json:"page_count" binding:"required"`
	Priority  int `json:"priority" binding:"required"`
}

// SubmitResponse is returned after a successful submission.
type SubmitResponse struct {
	Job      Job `json:"job"`
	QueueLen int `json:"queue_len"`
}

// PolicyInfo describes one scheduling discipline for the catalog endpoint.
type PolicyInfo struct {
	Name        Policy `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}
