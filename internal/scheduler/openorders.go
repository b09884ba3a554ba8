package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// OpenOrders runs the open-orders report loop: tick immediately, then wait
// one interval; after a failed tick wait only the retry interval before
// trying again.
type OpenOrders struct {
	interval time.Duration
	retry    time.Duration
	job      Job
	name     string
}

func NewOpenOrders(name string, interval, retry time.Duration, job Job) *OpenOrders {
	return &OpenOrders{interval: interval, retry: retry, job: job, name: name}
}

// Run blocks until ctx is cancelled. Meant to be started in a goroutine.
func (o *OpenOrders) Run(ctx context.Context) {
	for {
		wait := o.interval
		if err := o.tick(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.ErrorContext(ctx, "open orders job failed, retrying sooner",
				"job", o.name, "retry_in", o.retry.String(), "err", err)
			wait = o.retry
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (o *OpenOrders) tick(ctx context.Context) error {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()
	slog.InfoContext(tickCtx, "scheduled job tick", "job", o.name)
	return o.job(tickCtx)
}
