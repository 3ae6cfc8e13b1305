package history

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Pruner is the part of Store the retention job needs.
type Pruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// StartPruner schedules retention pruning on a standard five-field cron
// schedule (descriptors such as "@daily" also work). The caller stops the
// returned scheduler on shutdown.
func StartPruner(store Pruner, schedule string, retention time.Duration, log *logrus.Entry) (*cron.Cron, error) {
	if retention <= 0 {
		return nil, fmt.Errorf("history retention must be positive, got %s", retention)
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		pruneOnce(context.Background(), store, retention, time.Now(), log)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}
	c.Start()
	log.WithFields(logrus.Fields{"schedule": schedule, "retention": retention.String()}).Info("history pruner started")
	return c, nil
}

func pruneOnce(ctx context.Context, store Pruner, retention time.Duration, now time.Time, log *logrus.Entry) int64 {
	cutoff := now.Add(-retention)
	n, err := store.Prune(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("history prune failed")
		return 0
	}
	log.WithFields(logrus.Fields{"removed": n, "cutoff": cutoff.Format(time.RFC3339)}).Info("history pruned")
	return n
}
