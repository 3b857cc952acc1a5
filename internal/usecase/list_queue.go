package usecase

import (
	"github.com/spoolsim/spoolsim/internal/domain"
	"github.com/spoolsim/spoolsim/internal/repository"
)

// ListQueueUsecase exposes the current queue in arrival order.
type ListQueueUsecase struct {
	repo repository.JobRepository
}

// NewListQueueUsecase creates a new ListQueueUsecase.
func NewListQueueUsecase(repo repository.JobRepository) *ListQueueUsecase {
	return &ListQueueUsecase{repo: repo}
}

// Execute returns an arrival-order snapshot of the queue.
func (uc *ListQueueUsecase) Execute() []domain.Job {
	return uc.repo.List()
}
