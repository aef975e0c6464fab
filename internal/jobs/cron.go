package jobs

import (
	"context"
	"time"

	"easyrent-backend/internal/currency"
	"easyrent-backend/pkg/logger"

	"github.com/robfig/cron/v3"
)

// StartRateSync schedules the recurring feed synchronization and returns the
// running scheduler. The caller stops it on shutdown.
func StartRateSync(sync *currency.Synchronizer, schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		report, err := sync.SyncFromFeed(ctx)
		if err != nil {
			logger.Logger.Errorf("Scheduled rate sync failed: %v", err)
			return
		}
		logger.Logger.Printf("Scheduled rate sync: %d pairs updated, %d skipped", report.PairsUpdated, len(report.Skipped))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Logger.Printf("Rate sync scheduled: %q", schedule)
	return c, nil
}
