package services

import (
	"github.com/societyhub/societyhub-api/internal/jobs"
)

// JobService exposes background worker state to the API
type JobService struct {
	worker *jobs.Worker
}

func NewJobService(worker *jobs.Worker) *JobService {
	return &JobService{
		worker: worker,
	}
}

func (s *JobService) GetStatus() map[string]interface{} {
	stats := s.worker.GetStats()
	return map[string]interface{}{
		"active_jobs":   stats.ActiveJobs,
		"finished_jobs": stats.FinishedJobs,
		"failed_jobs":   stats.FailedJobs,
		"queue_length":  stats.QueueLength,
	}
}
