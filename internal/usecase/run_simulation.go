package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/metrics"
	"github.com/spoolsim/spoolsim/internal/repository"
	"github.com/spoolsim/spoolsim/internal/scheduler"
	"github.com/spoolsim/spoolsim/internal/simulator"
)

// RunSimulationUsecase orders a snapshot of the queue under one discipline
// and walks the timeline over it. The repository is never mutated by a run.
type RunSimulationUsecase struct {
	repo   repository.JobRepository
	logger *zap.Logger
}

// NewRunSimulationUsecase creates a new RunSimulationUsecase.
func NewRunSimulationUsecase(repo repository.JobRepository, logger *zap.Logger) *RunSimulationUsecase {
	return &RunSimulationUsecase{
		repo:   repo,
		logger: logger,
	}
}

// Execute runs one simulation and returns its report.
func (uc *RunSimulationUsecase) Execute(policy domain.Policy) (*domain.Report, error) {
	if !policy.IsValid() {
		return nil, domain.ErrUnknownPolicy
	}
	if uc.repo.IsEmpty() {
		return nil, domain.ErrEmptyQueue
	}

	ordered, err := scheduler.Order(policy, uc.repo.List())
	if err != nil {
		return nil, err
	}

	report, err := simulator.Simulate(policy, ordered)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", policy, err)
	}

	metrics.SimulationsTotal.WithLabelValues(string(policy)).Inc()

	uc.logger.Info("Simulation completed",
		zap.String("policy", string(policy)),
		zap.Int("job_count", len(report.Jobs)),
		zap.Float64("avg_wait", report.AvgWaitTime),
		zap.Float64("avg_turnaround", report.AvgTurnaroundTime),
	)

	return report, nil
}
