package probe

import "time"

// Attempt records one network request/response cycle. A verdict is
// derived exclusively from recorded attempts, never without evidence.
type Attempt struct {
	// Endpoint is the URL the request was issued against.
	Endpoint string `json:"endpoint"`

	// Method labels which probing approach issued the request
	// (status, content, api, search, embed, rss).
	Method string `json:"method"`

	// Timestamp is when the request was issued.
	Timestamp time.Time `json:"timestamp"`

	// StatusCode is the raw HTTP status, or 0 on transport failure.
	StatusCode int `json:"status_code"`

	// Error is the transport-error marker, empty on success.
	Error string `json:"error,omitempty"`

	// Verdict is the partial classification derived from this attempt.
	// Intermediate retried attempts stay unknown; the decisive attempt
	// carries the strategy's classification.
	Verdict Verdict `json:"verdict"`
}

// Outcome is what a strategy produces: the verdict, the method that
// produced it, and the full ordered evidence trail.
type Outcome struct {
	Verdict  Verdict
	Method   string
	Err      string
	Attempts []Attempt
}

// seal stamps the terminal verdict onto the last recorded attempt and
// wraps everything into an Outcome.
func seal(attempts []Attempt, v Verdict, method string) Outcome {
	if len(attempts) > 0 {
		attempts[len(attempts)-1].Verdict = v
	}
	return Outcome{Verdict: v, Method: method, Attempts: attempts}
}

// sealError is seal for failure outcomes, carrying the failure message.
func sealError(attempts []Attempt, method, msg string) Outcome {
	out := seal(attempts, VerdictError, method)
	out.Err = msg
	return out
}
