package bot

import (
	"context"
	"time"
)

//go:generate mockgen -source=waiter.go -destination=mocks/mock_waiter.go -package=mocks

// Waiter blocks the opponent goroutine to pace its replies.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerWaiter sleeps for real, returning early if ctx is cancelled.
type TimerWaiter struct{}

func (TimerWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
