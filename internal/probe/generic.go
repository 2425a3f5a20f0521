package probe

import (
	"context"
	"net/http"

	"github.com/tmarden/handlescout/internal/platform"
)

// GenericStatus probes the public profile URL and classifies purely on
// the status code. Redirects are not followed: a redirect to a login or
// landing page must not read as 200.
type GenericStatus struct{}

const methodStatus = "status"

// Probe issues one GET against the profile URL. 404 means the handle is
// free, 200 means someone holds it, anything else is inconclusive.
func (GenericStatus) Probe(ctx context.Context, s *Session, p platform.Platform, candidate string) Outcome {
	url, err := p.ProfileURL(candidate)
	if err != nil {
		return Outcome{Verdict: VerdictError, Method: methodStatus, Err: err.Error()}
	}

	attempts, resp, err := fetch(ctx, s, methodStatus, url, nil, false)
	if err != nil {
		return classifyFailure(attempts, methodStatus, err)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return seal(attempts, VerdictAvailable, methodStatus)
	case http.StatusOK:
		return seal(attempts, VerdictTaken, methodStatus)
	default:
		return seal(attempts, VerdictUnknown, methodStatus)
	}
}
