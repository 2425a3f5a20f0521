package probe

import (
	"context"

	"github.com/tmarden/handlescout/internal/platform"
)

// MethodMulti tags outcomes where every sub-probe was inconclusive.
const MethodMulti = "multi"

// MultiEndpoint runs an ordered list of sub-probes, stopping at the
// first non-unknown result. Sub-probes are strictly sequential: each
// executes only because the previous was inconclusive.
type MultiEndpoint struct {
	Subs []Strategy
}

// Probe chains the sub-probes and accumulates their evidence.
func (m MultiEndpoint) Probe(ctx context.Context, s *Session, p platform.Platform, candidate string) Outcome {
	var attempts []Attempt

	for _, sub := range m.Subs {
		out := sub.Probe(ctx, s, p, candidate)
		attempts = append(attempts, out.Attempts...)

		if out.Verdict != VerdictUnknown {
			return Outcome{
				Verdict:  out.Verdict,
				Method:   out.Method,
				Err:      out.Err,
				Attempts: attempts,
			}
		}
	}

	return Outcome{Verdict: VerdictUnknown, Method: MethodMulti, Attempts: attempts}
}
