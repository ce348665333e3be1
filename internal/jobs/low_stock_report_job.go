package jobs

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically scans the inventory for items at or below
// their reorder level and logs them. It catches items whose stored status is
// stale, since the scan compares quantities directly.
type LowStockReportJob struct {
	handler queries.GetInventoryItemsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates a new job for reporting low inventory stock.
func NewLowStockReportJob(handler queries.GetInventoryItemsQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run every minute.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetInventoryItemsQuery(queries.InventoryItemsFilter{LowStock: true})

		items, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Inventory item at or below reorder level",
				"partNumber", item.PartNumber,
				"partName", item.PartName,
				"quantityInStock", item.QuantityInStock,
				"reorderLevel", item.ReorderLevel,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every minute)")
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
