package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpenOrders_TicksImmediately(t *testing.T) {
	ticked := make(chan struct{}, 1)
	o := NewOpenOrders("test", time.Hour, time.Hour, func(ctx context.Context) error {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go o.Run(ctx)

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate first tick")
	}
}

func TestOpenOrders_RetriesSoonerAfterFailure(t *testing.T) {
	var ticks atomic.Int32
	done := make(chan struct{})
	o := NewOpenOrders("test", time.Hour, 10*time.Millisecond, func(ctx context.Context) error {
		n := ticks.Add(1)
		if n == 1 {
			return errors.New("smtp down")
		}
		close(done)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go o.Run(ctx)

	// With the regular interval at an hour, a second tick can only come
	// from the shortened retry wait.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected a retry tick after failure")
	}
	assert.GreaterOrEqual(t, ticks.Load(), int32(2))
}

func TestOpenOrders_StopsOnCancel(t *testing.T) {
	o := NewOpenOrders("test", 5*time.Millisecond, 5*time.Millisecond, func(ctx context.Context) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		o.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestDaily_RunsJobOnInterval(t *testing.T) {
	ticked := make(chan struct{}, 1)
	d := NewDaily("test", 10*time.Millisecond, func(ctx context.Context) error {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, d.Start(ctx))
	defer d.Stop()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("expected a scheduled tick")
	}
}

func TestDaily_KeepsTickingAfterJobError(t *testing.T) {
	var ticks atomic.Int32
	d := NewDaily("test", 10*time.Millisecond, func(ctx context.Context) error {
		ticks.Add(1)
		return errors.New("generation failed")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, d.Start(ctx))
	defer d.Stop()

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 },
		time.Second, 5*time.Millisecond)
}
