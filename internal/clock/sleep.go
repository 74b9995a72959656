// Package clock centralizes the process's time source so services and their
// tests share one injectable clock.
package clock

import (
	"context"
	"time"

	bclock "github.com/benbjohnson/clock"
)

// Clock is the time source injected into services.
type Clock = bclock.Clock

// Mock is a controllable Clock for tests.
type Mock = bclock.Mock

// New returns a Clock backed by real time.
func New() Clock {
	return bclock.New()
}

// NewMock returns a Mock parked at the Unix epoch.
func NewMock() *Mock {
	return bclock.NewMock()
}

// SleepWithContext waits for the duration on clk or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, clk Clock, d time.Duration) error {
	timer := clk.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
