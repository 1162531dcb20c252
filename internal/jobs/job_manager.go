package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
//
// Today it owns a single job, the order audit, which reads every kind
// through the same store the admin galleries use and only logs what it
// finds. Jobs never write to the store.
//
// Example:
//
//	jobManager := jobs.NewJobManager(store, cfg.AuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//	    log.Fatalf("Failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
type JobManager struct {
	orderAuditJob *OrderAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// auditSchedule is a robfig/cron spec such as "@every 1m" or "*/5 * * * *";
// an empty value falls back to DefaultAuditSchedule.
func NewJobManager(source ItemSource, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderAuditJob: NewOrderAuditJob(source, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start order audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully. It waits for a running
// audit to finish before returning.
func (jm *JobManager) StopAll() {
	jm.orderAuditJob.Stop()
}
