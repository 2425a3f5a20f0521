package probe

import (
	"context"
	"testing"
	"time"

	"github.com/tmarden/handlescout/internal/randx"
)

func TestPacer_JitterStaysInBounds(t *testing.T) {
	jitter := 20 * time.Millisecond

	// min of zero keeps the limiter from blocking; only jitter sleeps.
	p := NewPacer(0, jitter, randx.New(1, 2))

	var slept []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	for range 20 {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}

	if len(slept) != 20 {
		t.Fatalf("slept %d times, want 20", len(slept))
	}
	for _, d := range slept {
		if d < 0 || d >= jitter {
			t.Errorf("jitter %v outside [0, %v)", d, jitter)
		}
	}
}

func TestPacer_NilIsNoop(t *testing.T) {
	var p *Pacer
	if err := p.Wait(context.Background()); err != nil {
		t.Errorf("Wait() on nil pacer = %v", err)
	}
}

func TestPacer_MaxBelowMin(t *testing.T) {
	p := NewPacer(20*time.Millisecond, 5*time.Millisecond, randx.New(1, 2))
	if p.jitter != 0 {
		t.Errorf("jitter = %v, want 0 when max < min", p.jitter)
	}
}

func TestPacer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPacer(time.Second, 2*time.Second, randx.New(1, 2))
	if err := p.Wait(ctx); err == nil {
		t.Error("Wait() should fail once the context is canceled")
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), 0); err != nil {
		t.Errorf("zero duration = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Minute); err == nil {
		t.Error("canceled context should interrupt the sleep")
	}
}
