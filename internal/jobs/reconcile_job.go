// Package jobs schedules background maintenance with robfig/cron.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Reconciler repairs slot occupancy counters.
type Reconciler interface {
	ReconcileOccupancy(ctx context.Context) (int, error)
}

// ReconcileJob runs one reconciliation pass with its own timeout.
func ReconcileJob(r Reconciler, timeout time.Duration) func() {
	return func() {
		log.Println("[Cron] Running job: ReconcileOccupancy...")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		fixed, err := r.ReconcileOccupancy(ctx)
		if err != nil {
			log.Printf("[Cron] ReconcileOccupancy failed after %d fixes: %v", fixed, err)
			return
		}
		if fixed > 0 {
			log.Printf("[Cron] ReconcileOccupancy corrected %d slots", fixed)
		}
	}
}

// Start registers the jobs on schedule and starts the scheduler. An empty
// schedule disables background work and returns a nil scheduler.
func Start(schedule string, r Reconciler) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, ReconcileJob(r, time.Minute)); err != nil {
		return nil, err
	}
	c.Start()

	log.Printf("[Cron] Reconcile job scheduled: %s", schedule)
	return c, nil
}
