// Package jobs provides scheduled background tasks for the gallery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(store, cfg.AuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderAuditJob lists every kind on a schedule (DefaultAuditSchedule unless
// configured) and logs lists whose orders have gaps, duplicates or missing
// values. Deleting an item leaves a gap; reordering under a tag filter can
// leave duplicates. Both are expected and only reported. Any unfiltered drag
// in the admin gallery renumbers the whole list again.
package jobs
