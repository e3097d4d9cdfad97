package app

import (
	"context"
	"log"
	"time"

	"chartdeck/ports"
)

// SweepRunner periodically evicts expired artifacts from the store. The
// /cleanup endpoint offers the same sweep on demand; the runner covers
// deployments where nobody calls it.
type SweepRunner struct {
	store    ports.ArtifactStore
	maxAge   time.Duration
	interval time.Duration
}

// NewSweepRunner creates a sweep runner. A non-positive interval disables
// periodic sweeping.
func NewSweepRunner(store ports.ArtifactStore, maxAge, interval time.Duration) *SweepRunner {
	return &SweepRunner{store: store, maxAge: maxAge, interval: interval}
}

// Run sweeps on every tick until the context is cancelled.
func (r *SweepRunner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		log.Printf("[SweepRunner] Periodic sweeping disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[SweepRunner] Sweeping every %s (max age %s)", r.interval, r.maxAge)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, remaining, err := r.store.Sweep(ctx, r.maxAge)
			if err != nil {
				log.Printf("[SweepRunner] Sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("[SweepRunner] Removed %d expired artifacts, %d remaining", removed, remaining)
			}
		}
	}
}
