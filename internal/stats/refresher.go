package stats

import (
	"context"
	"strconv"
	"time"

	"github.com/cardbinder/cardbinder/internal/metrics"
	"github.com/cardbinder/cardbinder/pkg/logging"
	"github.com/robfig/cron/v3"
)

const refreshSchedule = "@every 5m"

// CatalogCounter provides the per-set card counts from the catalog store
type CatalogCounter interface {
	CountCardsBySet(ctx context.Context) (map[uint]int64, error)
}

// MembershipCounter provides the total membership row count from the user
// store
type MembershipCounter interface {
	CountMemberships(ctx context.Context) (int64, error)
}

// Refresher periodically recomputes the catalog and collection gauges. The
// catalog side only changes when a new ingestion runs, so a coarse schedule
// is plenty.
type Refresher struct {
	catalog     CatalogCounter
	memberships MembershipCounter
	cron        *cron.Cron
	logger      logging.Logger
}

// NewRefresher creates a stats refresher over the two stores
func NewRefresher(catalog CatalogCounter, memberships MembershipCounter, logger logging.Logger) *Refresher {
	return &Refresher{
		catalog:     catalog,
		memberships: memberships,
		cron:        cron.New(),
		logger:      logger,
	}
}

// Start runs one refresh immediately and schedules the periodic ones
func (r *Refresher) Start() error {
	r.refresh()
	if _, err := r.cron.AddFunc(refreshSchedule, r.refresh); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the schedule; a refresh in flight finishes
func (r *Refresher) Stop() {
	r.cron.Stop()
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := r.catalog.CountCardsBySet(ctx)
	if err != nil {
		r.logger.Error("failed to count catalog cards", err, nil)
	} else {
		for setID, count := range counts {
			metrics.CatalogCardsPerSet.WithLabelValues(strconv.FormatUint(uint64(setID), 10)).Set(float64(count))
		}
	}

	total, err := r.memberships.CountMemberships(ctx)
	if err != nil {
		r.logger.Error("failed to count collection rows", err, nil)
		return
	}
	metrics.CollectionRowsTotal.Set(float64(total))

	r.logger.Debug("stats refreshed", map[string]interface{}{
		"sets":            len(counts),
		"collection_rows": total,
	})
}
