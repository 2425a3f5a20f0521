package probe

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/tmarden/handlescout/internal/platform"
)

// InternalAPI probes a platform's own JSON endpoint. Presence of a
// nested user/profile object means the handle is claimed.
type InternalAPI struct {
	// Method labels the attempts; defaults to "api".
	Method string

	// Endpoint is the JSON endpoint template with a {username} placeholder.
	Endpoint string

	// Headers are the platform-specific headers the endpoint requires.
	Headers map[string]string

	// UserPath is the gjson path of the user object (e.g. "data.user").
	UserPath string
}

func (a InternalAPI) method() string {
	if a.Method != "" {
		return a.Method
	}
	return "api"
}

// Probe issues one GET against the JSON endpoint and classifies from the
// parsed body: user object present means taken, absent means available,
// malformed means unknown.
func (a InternalAPI) Probe(ctx context.Context, s *Session, p platform.Platform, candidate string) Outcome {
	url := expand(a.Endpoint, candidate)

	attempts, resp, err := fetch(ctx, s, a.method(), url, a.Headers, true)
	if err != nil {
		return classifyFailure(attempts, a.method(), err)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return seal(attempts, VerdictAvailable, a.method())
	case http.StatusOK:
		if !gjson.Valid(resp.Body) {
			return seal(attempts, VerdictUnknown, a.method())
		}
		if present(gjson.Get(resp.Body, a.UserPath)) {
			return seal(attempts, VerdictTaken, a.method())
		}
		return seal(attempts, VerdictAvailable, a.method())
	default:
		return seal(attempts, VerdictUnknown, a.method())
	}
}

// present reports whether a JSON value holds an actual user record.
// Null, empty-string, and empty-container values count as absent:
// some endpoints return a shell object for missing users.
func present(r gjson.Result) bool {
	if !r.Exists() || r.Type == gjson.Null {
		return false
	}
	if r.Type == gjson.String {
		return r.Str != ""
	}
	if r.IsObject() {
		return len(r.Map()) > 0
	}
	if r.IsArray() {
		return len(r.Array()) > 0
	}
	return true
}
