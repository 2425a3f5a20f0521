package probe

import (
	"context"
	"testing"
	"time"

	"github.com/tmarden/handlescout/internal/errors"
)

func TestFetch_RetriesTransientStatus(t *testing.T) {
	ft := &fakeTransport{script: []fakeResponse{
		{status: 429},
		{status: 503},
		{status: 404},
	}}

	var delays []time.Duration
	s := newTestSession(ft)
	s.Retry.Sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	attempts, resp, err := fetch(context.Background(), s, "status", "https://example.com/x", nil, false)
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("final status = %d, want 404", resp.StatusCode)
	}
	if len(attempts) != 3 {
		t.Fatalf("recorded %d attempts, want 3", len(attempts))
	}
	if attempts[0].StatusCode != 429 || attempts[1].StatusCode != 503 {
		t.Errorf("intermediate statuses = %d, %d", attempts[0].StatusCode, attempts[1].StatusCode)
	}
	for i, a := range attempts {
		if a.Verdict != VerdictUnknown {
			t.Errorf("attempt %d verdict = %q, fetch must leave classification to the caller", i, a.Verdict)
		}
	}
	if len(delays) != 2 {
		t.Errorf("slept %d times, want 2", len(delays))
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] < delays[i-1] {
			t.Errorf("delays not non-decreasing: %v", delays)
		}
	}
}

func TestFetch_DoesNotRetryDecisiveStatus(t *testing.T) {
	ft := &fakeTransport{script: []fakeResponse{{status: 200}}}

	attempts, resp, err := fetch(context.Background(), newTestSession(ft), "status", "https://example.com/x", nil, false)
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if len(ft.calls) != 1 {
		t.Errorf("transport saw %d calls, want 1", len(ft.calls))
	}
	if len(attempts) != 1 {
		t.Errorf("recorded %d attempts, want 1", len(attempts))
	}
}

func TestFetch_ExhaustsRetryBudget(t *testing.T) {
	ft := &fakeTransport{script: []fakeResponse{{status: 429}}}

	attempts, resp, err := fetch(context.Background(), newTestSession(ft), "status", "https://example.com/x", nil, false)
	if !errors.Is(err, ErrExhaustedRetries) {
		t.Fatalf("fetch() error = %v, want ErrExhaustedRetries", err)
	}
	if resp == nil || resp.StatusCode != 429 {
		t.Error("last response must be returned for evidence")
	}
	if len(attempts) != 3 {
		t.Errorf("recorded %d attempts, want 3", len(attempts))
	}
}

func TestFetch_TransportErrorStops(t *testing.T) {
	ft := &fakeTransport{script: []fakeResponse{{err: context.DeadlineExceeded}}}

	attempts, _, err := fetch(context.Background(), newTestSession(ft), "status", "https://example.com/x", nil, false)
	if err == nil {
		t.Fatal("fetch() should propagate transport errors")
	}
	if len(ft.calls) != 1 {
		t.Errorf("transport saw %d calls, connection failures must not retry", len(ft.calls))
	}
	if len(attempts) != 1 || attempts[0].Error != "timeout" {
		t.Errorf("attempts = %+v", attempts)
	}
}

func TestFetch_MergesProfileHeaders(t *testing.T) {
	ft := &fakeTransport{script: []fakeResponse{{status: 200}}}
	s := newTestSession(ft)

	extra := map[string]string{"X-Custom": "1", "User-Agent": "override"}
	if _, _, err := fetch(context.Background(), s, "api", "https://example.com/x", extra, true); err != nil {
		t.Fatalf("fetch() error = %v", err)
	}

	headers := ft.calls[0].Headers
	if headers["X-Custom"] != "1" {
		t.Errorf("X-Custom = %q", headers["X-Custom"])
	}
	if headers["User-Agent"] != "override" {
		t.Errorf("User-Agent = %q, extras must win over the profile", headers["User-Agent"])
	}
	if headers["Accept-Language"] != "en-US" {
		t.Errorf("Accept-Language = %q", headers["Accept-Language"])
	}
}

func TestPolicy_Attempts(t *testing.T) {
	if got := (Policy{MaxAttempts: 0}).attempts(); got != 1 {
		t.Errorf("attempts() = %d, want 1", got)
	}
	if got := (Policy{MaxAttempts: 5}).attempts(); got != 5 {
		t.Errorf("attempts() = %d, want 5", got)
	}
}

func TestTransientStatus(t *testing.T) {
	for _, code := range []int{429, 500, 502, 503, 504} {
		if !transientStatus(code) {
			t.Errorf("transientStatus(%d) = false", code)
		}
	}
	for _, code := range []int{200, 301, 400, 403, 404} {
		if transientStatus(code) {
			t.Errorf("transientStatus(%d) = true", code)
		}
	}
}
