package probe

import (
	"context"

	"github.com/tmarden/handlescout/internal/platform"
)

// Strategy is the platform-specific algorithm mapping probe evidence to
// a verdict. Implementations never return errors past this boundary:
// transport failures become error-tagged attempts inside the Outcome.
type Strategy interface {
	Probe(ctx context.Context, s *Session, p platform.Platform, candidate string) Outcome
}

// classifyFailure converts a fetch failure into an error outcome. The
// attempts already carry the error-tagged evidence.
func classifyFailure(attempts []Attempt, method string, err error) Outcome {
	return sealError(attempts, method, transportError(err))
}
