package resolve

import (
	"context"
	"log/slog"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
	"github.com/tmarden/handlescout/internal/logging"
	"github.com/tmarden/handlescout/internal/probe"
)

// Finder runs the generate-then-check search loop until a candidate is
// available everywhere it was asked to look.
type Finder struct {
	gen      *gen.Generator
	resolver *Resolver
	logger   *slog.Logger
}

// NewFinder builds a Finder over the given generator and resolver.
func NewFinder(g *gen.Generator, r *Resolver, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Finder{gen: g, resolver: r, logger: logger}
}

// Found is a successful search: the winning candidate and the verdicts
// that qualified it.
type Found struct {
	Candidate gen.Candidate
	Attempts  int
	Results   map[string]Result
}

// FindAvailable generates up to maxAttempts candidates in the given
// style and returns the first one that every platform in keys reports
// available. Platforms are checked one at a time so a taken handle is
// abandoned on the first bad verdict without probing the rest.
// Returns errors.ErrNoHandleFound once the attempt budget is spent.
func (f *Finder) FindAvailable(ctx context.Context, style gen.Style, length, maxAttempts int, keys []string) (Found, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if len(keys) == 0 {
		return Found{}, errors.Wrap(errors.ErrInvalidConfig, "no platforms to check")
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Found{}, err
		}

		candidate, err := f.gen.Generate(style, length)
		if err != nil {
			return Found{}, err
		}

		f.logger.Debug("trying candidate",
			slog.Int("attempt", attempt),
			slog.String("candidate", candidate.Name))

		results, ok, err := f.checkAll(ctx, candidate.Name, keys)
		if err != nil {
			return Found{}, err
		}
		if ok {
			return Found{Candidate: candidate, Attempts: attempt, Results: results}, nil
		}
	}

	return Found{}, errors.Wrapf(errors.ErrNoHandleFound, "after %d attempts", maxAttempts)
}

// checkAll probes keys in order, stopping at the first verdict that is
// not available. Only a full sweep of available verdicts qualifies.
func (f *Finder) checkAll(ctx context.Context, candidate string, keys []string) (map[string]Result, bool, error) {
	results := make(map[string]Result, len(keys))

	for _, key := range keys {
		res, err := f.resolver.Resolve(ctx, candidate, key)
		if err != nil {
			return nil, false, err
		}
		results[key] = res

		if res.Verdict != probe.VerdictAvailable {
			f.logger.Debug("abandoning candidate",
				slog.String("candidate", candidate),
				slog.String("platform", key),
				slog.String("verdict", string(res.Verdict)))
			return results, false, nil
		}
	}

	return results, true, nil
}
