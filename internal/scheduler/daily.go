// Package scheduler runs the recurring report jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work. Errors are logged, never fatal.
type Job func(ctx context.Context) error

// tickTimeout bounds a single report generation pass.
const tickTimeout = 5 * time.Minute

// Daily runs a job on a fixed interval via cron. The interval comes from
// configuration: a short one in development, 24 hours in production.
type Daily struct {
	cron     *cron.Cron
	interval time.Duration
	job      Job
	name     string
}

func NewDaily(name string, interval time.Duration, job Job) *Daily {
	return &Daily{
		cron:     cron.New(),
		interval: interval,
		job:      job,
		name:     name,
	}
}

// Start registers the job and begins ticking. The first run happens after
// one full interval.
func (d *Daily) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", d.interval)
	_, err := d.cron.AddFunc(spec, func() {
		tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
		defer cancel()
		slog.InfoContext(tickCtx, "scheduled job tick", "job", d.name)
		if err := d.job(tickCtx); err != nil {
			slog.ErrorContext(tickCtx, "scheduled job failed", "job", d.name, "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %s: %w", d.name, err)
	}
	d.cron.Start()
	return nil
}

// Stop halts the ticker and waits for a running job to finish.
func (d *Daily) Stop() {
	<-d.cron.Stop().Done()
}
