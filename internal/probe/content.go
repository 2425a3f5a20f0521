package probe

import (
	"context"
	"net/http"
	"strings"

	"github.com/tmarden/handlescout/internal/platform"
)

// ContentHeuristic probes a page and scans the body for a fixed
// allow-list of profile-indicator keywords. Platforms that return 200
// for both existing and missing profiles need this instead of status
// classification.
type ContentHeuristic struct {
	// Method labels the attempts; defaults to "content".
	Method string

	// Endpoint overrides the platform profile URL when set. Supports
	// the {username} placeholder.
	Endpoint string

	// Indicators mark a claimed profile when found in the body.
	Indicators []string

	// MatchAll requires every indicator instead of any one of them.
	MatchAll bool

	// Require must also appear in the body for the indicators to count.
	Require string

	// LoginMarkers suggest a signup/login wall; with no indicators
	// present they mark the handle as available.
	LoginMarkers []string

	// NoRedirects disables redirect following for this probe.
	NoRedirects bool
}

func (c ContentHeuristic) method() string {
	if c.Method != "" {
		return c.Method
	}
	return "content"
}

// Probe issues one GET and classifies from status plus body content.
func (c ContentHeuristic) Probe(ctx context.Context, s *Session, p platform.Platform, candidate string) Outcome {
	url := expand(c.Endpoint, candidate)
	if c.Endpoint == "" {
		var err error
		url, err = p.ProfileURL(candidate)
		if err != nil {
			return Outcome{Verdict: VerdictError, Method: c.method(), Err: err.Error()}
		}
	}

	attempts, resp, err := fetch(ctx, s, c.method(), url, nil, !c.NoRedirects)
	if err != nil {
		return classifyFailure(attempts, c.method(), err)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return seal(attempts, VerdictAvailable, c.method())
	case http.StatusOK:
		return seal(attempts, c.classify(resp.Body), c.method())
	default:
		return seal(attempts, VerdictUnknown, c.method())
	}
}

func (c ContentHeuristic) classify(body string) Verdict {
	content := strings.ToLower(body)

	if c.matches(content) {
		return VerdictTaken
	}
	for _, marker := range c.LoginMarkers {
		if strings.Contains(content, marker) {
			return VerdictAvailable
		}
	}
	return VerdictUnknown
}

func (c ContentHeuristic) matches(content string) bool {
	if len(c.Indicators) == 0 {
		return false
	}
	if c.Require != "" && !strings.Contains(content, c.Require) {
		return false
	}
	for _, indicator := range c.Indicators {
		found := strings.Contains(content, indicator)
		if c.MatchAll && !found {
			return false
		}
		if !c.MatchAll && found {
			return true
		}
	}
	return c.MatchAll
}
