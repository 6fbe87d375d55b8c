package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Retention periodically deletes visits older than the retention window.
type Retention struct {
	store  *Store
	window time.Duration
	cron   *cron.Cron
}

// NewRetention schedules cleanup with a cron expression such as "@daily".
func NewRetention(store *Store, window time.Duration, schedule string) (*Retention, error) {
	r := &Retention{store: store, window: window, cron: cron.New()}
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("schedule visitor cleanup %q: %w", schedule, err)
	}
	return r, nil
}

// Start runs one cleanup immediately and starts the schedule.
func (r *Retention) Start() {
	r.run()
	r.cron.Start()
}

// Stop stops the schedule and waits for a running cleanup.
func (r *Retention) Stop() {
	<-r.cron.Stop().Done()
}

// Cleanup deletes expired visits now.
func (r *Retention) Cleanup(ctx context.Context) (int64, error) {
	return r.store.DeleteOlderThan(ctx, r.window)
}

func (r *Retention) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := r.Cleanup(ctx)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, r.window)
	}
}
