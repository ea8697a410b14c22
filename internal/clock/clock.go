// Package clock supplies wall time to periodic workers so tests can drive them.
package clock

import (
	"context"
	"time"
)

// Clock reads the time and waits on it.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d, returning ctx.Err() if ctx ends first.
	Sleep(ctx context.Context, d time.Duration) error
}

// System is the process wall clock.
var System Clock = system{}

type system struct{}

func (system) Now() time.Time { return time.Now() }

func (system) Sleep(ctx context.Context, d time.Duration) error {
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
