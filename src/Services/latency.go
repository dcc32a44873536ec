package Services

import (
	"context"
	"time"
)

// simulatedLatency emulates the round-trip of the real analytics API
// this service stands in for. Zero disables it (tests).
var simulatedLatency time.Duration

func SetSimulatedLatency(d time.Duration) {
	simulatedLatency = d
}

// simulateLatency waits out the configured delay. A cancelled context
// aborts the wait before any store mutation happens, so an abandoned
// caller never applies its result.
func simulateLatency(ctx context.Context) error {
	if simulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(simulatedLatency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
