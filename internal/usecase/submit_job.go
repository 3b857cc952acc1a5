package usecase

import (
	"errors"

	"go.uber.org/zap"

	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/metrics"
	"github.com/spoolsim/spoolsim/internal/repository"
)

// SubmitJobUsecase handles the business logic for adding print jobs.
type SubmitJobUsecase struct {
	repo   repository.JobRepository
	logger *zap.Logger
}

// NewSubmitJobUsecase creates a new SubmitJobUsecase.
func NewSubmitJobUsecase(repo repository.JobRepository, logger *zap.Logger) *SubmitJobUsecase {
	return &SubmitJobUsecase{
		repo:   repo,
		logger: logger,
	}
}

// Execute appends a job to the queue and returns it with its assigned id.
func (uc *SubmitJobUsecase) Execute(req *domain.SubmitRequest) (*domain.SubmitResponse, error) {
	job, err := uc.repo.Add(req.PageCount, req.Priority)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCapacityExceeded):
			metrics.JobsRejectedTotal.WithLabelValues("capacity_exceeded").Inc()
		case errors.Is(err, domain.ErrInvalidJobParameters):
			metrics.JobsRejectedTotal.WithLabelValues("invalid_parameters").Inc()
		}
		uc.logger.Debug("Job submission rejected",
			zap.Int("page_count", req.PageCount),
			zap.Int("priority", req.Priority),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.JobsSubmittedTotal.Inc()
	metrics.QueueDepth.Set(float64(uc.repo.Len()))

	uc.logger.Info("Job submitted",
		zap.Int("job_id", job.ID),
		zap.Int("page_count", job.PageCount),
		zap.Int("priority", job.Priority),
	)

	return &domain.SubmitResponse{
		Job:      job,
		QueueLen: uc.repo.Len(),
	}, nil
}
