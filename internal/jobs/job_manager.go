// Package jobs provides scheduled background tasks for the vehicle tracking
// system, implemented with github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"vehicletrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getInventoryItemsHandler queries.GetInventoryItemsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(getInventoryItemsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
}
