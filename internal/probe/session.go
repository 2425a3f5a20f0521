package probe

import (
	"context"
	"strings"
	"time"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/platform"
)

// HeaderProfile is the small configurable header set sent with every
// probe request. Strategy-specific headers layer on top.
type HeaderProfile struct {
	UserAgent      string
	AcceptLanguage string
}

// headers merges the profile with strategy-specific extras. Extras win
// on conflict.
func (p HeaderProfile) headers(extra map[string]string) map[string]string {
	merged := make(map[string]string, len(extra)+2)
	if p.UserAgent != "" {
		merged["User-Agent"] = p.UserAgent
	}
	if p.AcceptLanguage != "" {
		merged["Accept-Language"] = p.AcceptLanguage
	}
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}

// Session carries the per-resolution probe context: transport, header
// profile, pacing, and the retry policy. A fresh Session per resolution
// keeps resolutions independent of each other.
type Session struct {
	Transport Transport
	Profile   HeaderProfile
	Pacer     *Pacer
	Retry     Policy
}

// ErrExhaustedRetries marks a probe chain that burned its attempt budget
// on transient responses. It is terminal within one probe and surfaces
// as an error verdict, never as an exception.
var ErrExhaustedRetries = errors.New("exhausted retries")

// expand substitutes the candidate into an endpoint template.
func expand(template, candidate string) string {
	return strings.ReplaceAll(template, platform.Placeholder, candidate)
}

// fetch issues one logical GET: a courtesy pacing delay, then the request,
// retried under the session policy for transient statuses only. Every
// actual network request is recorded as one attempt. The last attempt's
// verdict is left unknown for the caller to classify.
//
// Returns ErrExhaustedRetries when the budget ends on a transient status;
// the last response is still returned for evidence.
func fetch(ctx context.Context, s *Session, method, url string, extra map[string]string, followRedirects bool) ([]Attempt, *Response, error) {
	var attempts []Attempt

	req := Request{
		URL:             url,
		Headers:         s.Profile.headers(extra),
		FollowRedirects: followRedirects,
	}

	bo := s.Retry.backoff()
	budget := s.Retry.attempts()

	for try := 0; try < budget; try++ {
		if err := s.Pacer.Wait(ctx); err != nil {
			attempts = append(attempts, Attempt{
				Endpoint:  url,
				Method:    method,
				Timestamp: time.Now(),
				Error:     transportError(err),
				Verdict:   VerdictError,
			})
			return attempts, nil, err
		}

		resp, err := s.Transport.Get(ctx, req)
		attempt := Attempt{
			Endpoint:  url,
			Method:    method,
			Timestamp: time.Now(),
			Verdict:   VerdictUnknown,
		}

		if err != nil {
			attempt.Error = transportError(err)
			attempt.Verdict = VerdictError
			attempts = append(attempts, attempt)
			return attempts, nil, err
		}

		attempt.StatusCode = resp.StatusCode
		attempts = append(attempts, attempt)

		if !transientStatus(resp.StatusCode) {
			return attempts, resp, nil
		}
		if try == budget-1 {
			return attempts, resp, errors.Wrapf(ErrExhaustedRetries, "last status %d", resp.StatusCode)
		}
		if err := s.Retry.sleep(ctx, bo.NextBackOff()); err != nil {
			return attempts, resp, err
		}
	}

	// Unreachable: the loop always returns.
	return attempts, nil, errors.New("retry loop fell through")
}

// transportError normalizes failure messages so timeouts are reported
// consistently across transports.
func transportError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	return err.Error()
}
