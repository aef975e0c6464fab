package currency

import (
	"context"
	"fmt"
	"sort"
	"time"

	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/metrics"
	"easyrent-backend/pkg/nbkr"
)

// Synchronizer derives and stores all pairwise cross-rates from a set of
// rates observed directly against the reference currency.
//
// Concurrent runs are not mutually exclusive: two overlapping
// synchronizations may interleave their upserts. Every write is an
// overwrite of a single pair, so the store converges to the last writer's
// feed; this is an accepted limitation rather than a corruption risk.
type Synchronizer struct {
	store *Store
	feed  *nbkr.Client
}

func NewSynchronizer(store *Store, feed *nbkr.Client) *Synchronizer {
	return &Synchronizer{store: store, feed: feed}
}

// Report summarizes one synchronization run.
type Report struct {
	PairsUpdated int
	Skipped      []string
}

// Synchronize stores every direct rate (both directions) and then every
// derived cross-rate among the supplied currencies. direct maps currency
// code -> units of reference currency per 1 unit of that currency, already
// normalized by the quotation nominal. A failing pair is reported and
// skipped; only an unusable reference currency aborts the run. Re-running
// with the same input is idempotent.
func (s *Synchronizer) Synchronize(ctx context.Context, direct map[string]float64, reference string) (*Report, error) {
	if !models.IsSupportedCurrency(reference) {
		return nil, fmt.Errorf("reference currency %q is not supported", reference)
	}

	report := &Report{}
	now := time.Now().UTC()

	// sorted for deterministic processing and log order
	codes := make([]string, 0, len(direct))
	for code := range direct {
		if code == reference {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)

	stored := make([]string, 0, len(codes))
	for _, code := range codes {
		rate := direct[code]
		if err := s.store.UpsertRate(ctx, code, reference, rate, now); err != nil {
			logger.Logger.Errorf("skipping direct rate %s-%s: %v", code, reference, err)
			report.Skipped = append(report.Skipped, fmt.Sprintf("%s-%s", code, reference))
			continue
		}
		if err := s.store.UpsertRate(ctx, reference, code, 1/rate, now); err != nil {
			logger.Logger.Errorf("skipping inverse rate %s-%s: %v", reference, code, err)
			report.Skipped = append(report.Skipped, fmt.Sprintf("%s-%s", reference, code))
			continue
		}
		report.PairsUpdated += 2
		stored = append(stored, code)
		logger.Logger.Printf("Updated %s-%s rate: %v", code, reference, rate)
	}

	// cross-rates between every ordered pair of non-reference currencies
	for _, base := range stored {
		for _, target := range stored {
			if base == target {
				continue
			}
			if err := s.storeCrossRate(ctx, base, target, reference, now); err != nil {
				logger.Logger.Errorf("failed to compute cross-rate %s-%s: %v", base, target, err)
				report.Skipped = append(report.Skipped, fmt.Sprintf("%s-%s", base, target))
				continue
			}
			report.PairsUpdated++
		}
	}

	return report, nil
}

func (s *Synchronizer) storeCrossRate(ctx context.Context, base, target, reference string, now time.Time) error {
	baseToRef, err := s.store.GetRate(ctx, base, reference)
	if err != nil {
		return err
	}
	refToTarget, err := s.store.GetRate(ctx, reference, target)
	if err != nil {
		return err
	}
	cross := baseToRef * refToTarget
	if err := s.store.UpsertRate(ctx, base, target, cross, now); err != nil {
		return err
	}
	logger.Logger.Printf("Updated cross-rate %s-%s: %v", base, target, cross)
	return nil
}

// SyncFromFeed fetches the daily feed and runs a full synchronization
// against the reference currency. A feed fetch or parse failure is fatal;
// malformed or unsupported feed records are skipped per-record.
func (s *Synchronizer) SyncFromFeed(ctx context.Context) (*Report, error) {
	records, malformed, err := s.feed.FetchDailyRates(ctx)
	if err != nil {
		metrics.RateSyncRunsTotal.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("rate feed fetch failed: %w", err)
	}

	direct := make(map[string]float64, len(records))
	var skipped []string
	skipped = append(skipped, malformed...)
	for _, rec := range records {
		if !models.IsSupportedCurrency(rec.ISOCode) {
			skipped = append(skipped, rec.ISOCode)
			continue
		}
		// some currencies are quoted per 100 or 1000 units
		direct[rec.ISOCode] = rec.Value / rec.Nominal
	}

	report, err := s.Synchronize(ctx, direct, models.ReferenceCurrency)
	if err != nil {
		metrics.RateSyncRunsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	report.Skipped = append(skipped, report.Skipped...)

	metrics.RateSyncRunsTotal.WithLabelValues("success").Inc()
	metrics.RateSyncPairsUpdatedTotal.Add(float64(report.PairsUpdated))
	metrics.RateSyncRecordsSkippedTotal.Add(float64(len(report.Skipped)))
	logger.Logger.Printf("Rate synchronization complete: %d pairs updated, %d skipped", report.PairsUpdated, len(report.Skipped))
	return report, nil
}
