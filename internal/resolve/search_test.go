package resolve

import (
	"context"
	"strings"
	"testing"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
	"github.com/tmarden/handlescout/internal/logging"
	"github.com/tmarden/handlescout/internal/probe"
	"github.com/tmarden/handlescout/internal/randx"
)

func newTestFinder(t *testing.T, ft *fakeTransport) *Finder {
	t.Helper()
	return NewFinder(
		gen.New(randx.New(7, 11)),
		newTestResolver(t, ft),
		logging.ForTest(t),
	)
}

func TestFindAvailable_FirstCandidateWins(t *testing.T) {
	ft := &fakeTransport{} // default answer is 404, available everywhere

	found, err := newTestFinder(t, ft).FindAvailable(
		context.Background(), gen.StyleRandom, 0, 5, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("FindAvailable() error = %v", err)
	}

	if found.Candidate.Name == "" {
		t.Fatal("empty winning candidate")
	}
	if found.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", found.Attempts)
	}
	if len(found.Results) != 2 {
		t.Errorf("got %d results, want 2", len(found.Results))
	}
	for key, res := range found.Results {
		if res.Verdict != probe.VerdictAvailable {
			t.Errorf("%s = %q, want available", key, res.Verdict)
		}
	}
}

func TestFindAvailable_ExhaustsBudget(t *testing.T) {
	ft := &fakeTransport{respond: func(req probe.Request) (*probe.Response, error) {
		return &probe.Response{StatusCode: 200, FinalURL: req.URL}, nil // everything taken
	}}

	maxAttempts := 4
	_, err := newTestFinder(t, ft).FindAvailable(
		context.Background(), gen.StyleRandom, 0, maxAttempts, []string{"alpha", "beta"})
	if !errors.Is(err, errors.ErrNoHandleFound) {
		t.Fatalf("FindAvailable() error = %v, want ErrNoHandleFound", err)
	}

	// Taken on the first platform abandons the candidate without
	// probing the second, so one call per attempt.
	if got := ft.callCount(); got != maxAttempts {
		t.Errorf("transport saw %d calls, want %d", got, maxAttempts)
	}
	for _, call := range ft.calls {
		if !strings.HasPrefix(call.URL, "https://alpha.test/") {
			t.Errorf("probed %q, later platforms should never be reached", call.URL)
		}
	}
}

func TestFindAvailable_InconclusiveAbandonsCandidate(t *testing.T) {
	ft := &fakeTransport{respond: func(req probe.Request) (*probe.Response, error) {
		return &probe.Response{StatusCode: 503, FinalURL: req.URL}, nil
	}}

	_, err := newTestFinder(t, ft).FindAvailable(
		context.Background(), gen.StyleRandom, 0, 2, []string{"alpha"})
	if !errors.Is(err, errors.ErrNoHandleFound) {
		t.Errorf("FindAvailable() error = %v, want ErrNoHandleFound", err)
	}
}

func TestFindAvailable_NoPlatforms(t *testing.T) {
	_, err := newTestFinder(t, &fakeTransport{}).FindAvailable(
		context.Background(), gen.StyleRandom, 0, 3, nil)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("FindAvailable() error = %v, want ErrInvalidConfig", err)
	}
}

func TestFindAvailable_UnknownStyle(t *testing.T) {
	_, err := newTestFinder(t, &fakeTransport{}).FindAvailable(
		context.Background(), gen.Style("haiku"), 0, 3, []string{"alpha"})
	if !errors.Is(err, errors.ErrUnknownStyle) {
		t.Errorf("FindAvailable() error = %v, want ErrUnknownStyle", err)
	}
}

func TestFindAvailable_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFinder(t, &fakeTransport{}).FindAvailable(
		ctx, gen.StyleRandom, 0, 3, []string{"alpha"})
	if err == nil {
		t.Error("FindAvailable() should stop once the context is canceled")
	}
}
