package jobs

import (
	"context"
	"log/slog"

	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit once a minute.
const DefaultAuditSchedule = "@every 1m"

// ItemSource lists the stored items of a kind.
type ItemSource interface {
	ListItems(ctx context.Context, kind gallery.Kind) ([]*gallery.Item, error)
}

// OrderAuditJob reports stored lists whose orders are not exactly 0..n-1.
// It never writes.
type OrderAuditJob struct {
	source   ItemSource
	kinds    []gallery.Kind
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAuditJob creates the audit job for every kind. An empty schedule
// means DefaultAuditSchedule.
func NewOrderAuditJob(source ItemSource, schedule string, logger *slog.Logger) *OrderAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &OrderAuditJob{
		source:   source,
		kinds:    gallery.Kinds(),
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_audit_job"),
	}
}

// Start schedules the audit.
func (j *OrderAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Audit(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit job.
func (j *OrderAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order audit job stopped")
}

// Audit inspects every kind once and returns the findings of the kinds that
// could be listed.
func (j *OrderAuditJob) Audit(ctx context.Context) map[gallery.Kind]services.OrderAudit {
	results := make(map[gallery.Kind]services.OrderAudit, len(j.kinds))

	for _, kind := range j.kinds {
		items, err := j.source.ListItems(ctx, kind)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order audit failed", "kind", kind.String(), "error", err)
			continue
		}

		audit := services.AuditOrders(items)
		results[kind] = audit

		if audit.IsDense() {
			continue
		}
		j.logger.WarnContext(ctx, "Gallery order is not dense",
			"kind", kind.String(),
			"items", audit.Total,
			"unordered", audit.Unordered,
			"duplicates", audit.Duplicates,
			"gaps", audit.Gaps,
		)
	}

	return results
}
