package sensor

import (
	"context"
	"time"
)

// Run samples src at the given period and publishes into cell until ctx is
// cancelled. A failed read publishes nothing: the previous sample stays in
// place and the next tick tries again. Failures are not logged or counted;
// the animation's damping masks a stale tick.
func Run(ctx context.Context, src Source, cell *Cell, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if v, err := src.Tilt(); err == nil {
				cell.Store(v)
			}
		}
	}
}
