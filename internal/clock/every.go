package clock

import (
	"context"
	"time"
)

// Every runs fn right away and then on every tick of interval until ctx is
// done. It returns immediately. Each run gets its own goroutine, so a slow
// run never delays the next tick and runs may overlap.
func Every(ctx context.Context, clk Clock, interval time.Duration, fn func(context.Context)) {
	ticker := clk.Ticker(interval)

	go fn(ctx)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go fn(ctx)
			}
		}
	}()
}
