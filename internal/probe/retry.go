package probe

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// transientStatuses are the only responses worth retrying. Decisive
// 2xx/4xx responses are never retried.
var transientStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

func transientStatus(code int) bool {
	return transientStatuses[code]
}

// Policy is the shared retry policy applied to every probe request.
// One parameterized policy replaces per-platform retry logic.
type Policy struct {
	// MaxAttempts bounds the request count, including the first attempt.
	// Values below 1 are treated as 1.
	MaxAttempts int

	// InitialInterval is the first backoff delay. Subsequent delays grow
	// exponentially with the backoff package's default multiplier.
	InitialInterval time.Duration

	// Sleep is injectable for tests; nil means real sleeping.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// backoff returns a fresh exponential delay sequence for one probe chain.
func (p Policy) backoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		bo.InitialInterval = p.InitialInterval
	}
	bo.Reset()
	return bo
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}
