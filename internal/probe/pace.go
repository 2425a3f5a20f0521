package probe

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/tmarden/handlescout/internal/randx"
)

// Pacer spaces probe requests out with a bounded random courtesy delay.
// This is politeness policy, not correctness; a nil Pacer disables it.
type Pacer struct {
	limiter *rate.Limiter
	jitter  time.Duration
	rng     randx.Rand
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewPacer builds a pacer that allows one request per min interval and
// adds a random extra delay of up to max-min drawn from rng.
func NewPacer(min, max time.Duration, rng randx.Rand) *Pacer {
	if max < min {
		max = min
	}

	limit := rate.Inf
	if min > 0 {
		limit = rate.Every(min)
	}

	return &Pacer{
		limiter: rate.NewLimiter(limit, 1),
		jitter:  max - min,
		rng:     rng,
		sleep:   sleepContext,
	}
}

// Wait blocks until the next request may be issued, or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if p.jitter > 0 && p.rng != nil {
		d := time.Duration(p.rng.Uniform(0, float64(p.jitter)))
		return p.sleep(ctx, d)
	}
	return nil
}

// sleepContext sleeps for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
