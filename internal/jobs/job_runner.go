package jobs

import (
	"stayops-backend/internal/config"
	"stayops-backend/internal/logger"
	"stayops-backend/internal/session"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	sessions *session.Manager
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions *session.Manager, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions: sessions,
		config:   cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
