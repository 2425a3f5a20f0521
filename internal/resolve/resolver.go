package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/logging"
	"github.com/tmarden/handlescout/internal/platform"
	"github.com/tmarden/handlescout/internal/probe"
)

// MethodManual tags results for platforms without an automated check.
const MethodManual = "manual-check-required"

// Result is the availability answer for one (candidate, platform) pair,
// together with the evidence trail that produced it.
type Result struct {
	Candidate string          `json:"candidate"`
	Platform  string          `json:"platform"`
	Verdict   probe.Verdict   `json:"verdict"`
	Method    string          `json:"method"`
	Err       string          `json:"error,omitempty"`
	Attempts  []probe.Attempt `json:"attempts,omitempty"`
}

// Options configures a Resolver. Zero values fall back to safe defaults.
type Options struct {
	Registry   *platform.Registry
	Strategies map[string]probe.Strategy
	Transport  probe.Transport
	Profile    probe.HeaderProfile
	Pacer      *probe.Pacer
	Retry      probe.Policy

	// Concurrency bounds the worker pool used by ResolveMany.
	Concurrency int

	// Timeout is the overall budget for one ResolveMany call. Zero
	// means no budget.
	Timeout time.Duration

	Logger *slog.Logger
}

// Resolver answers availability questions by dispatching candidates to
// per-platform probe strategies. Safe for concurrent use.
type Resolver struct {
	registry    *platform.Registry
	strategies  map[string]probe.Strategy
	transport   probe.Transport
	profile     probe.HeaderProfile
	pacer       *probe.Pacer
	retry       probe.Policy
	concurrency int
	timeout     time.Duration
	logger      *slog.Logger
}

// New builds a Resolver from opts.
func New(opts Options) *Resolver {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewDiscard()
	}
	return &Resolver{
		registry:    opts.Registry,
		strategies:  opts.Strategies,
		transport:   opts.Transport,
		profile:     opts.Profile,
		pacer:       opts.Pacer,
		retry:       opts.Retry,
		concurrency: opts.Concurrency,
		timeout:     opts.Timeout,
		logger:      opts.Logger,
	}
}

// Resolve checks one candidate on one platform. Unknown platform keys
// and unsafe candidates propagate as errors; every network-related
// condition is folded into the returned verdict instead.
func (r *Resolver) Resolve(ctx context.Context, candidate, key string) (Result, error) {
	p, err := r.registry.Get(key)
	if err != nil {
		return Result{}, err
	}

	if p.ManualOnly() {
		r.logger.Debug("manual-only platform, skipping probe",
			slog.String("platform", p.Key),
			slog.String("candidate", candidate))
		return Result{
			Candidate: candidate,
			Platform:  p.Key,
			Verdict:   probe.VerdictUnknown,
			Method:    MethodManual,
		}, nil
	}

	// Validate the candidate before any strategy substitutes it into an
	// endpoint template.
	if _, err := p.ProfileURL(candidate); err != nil {
		return Result{}, err
	}

	strat, ok := r.strategies[p.Strategy]
	if !ok {
		return Result{}, errors.Wrapf(errors.ErrUnknownStrategy, "platform %q wants %q", p.Key, p.Strategy)
	}

	session := &probe.Session{
		Transport: r.transport,
		Profile:   r.profile,
		Pacer:     r.pacer,
		Retry:     r.retry,
	}

	out := runStrategy(ctx, strat, session, p, candidate)

	r.logger.Debug("probe finished",
		slog.String("platform", p.Key),
		slog.String("candidate", candidate),
		slog.String("verdict", string(out.Verdict)),
		slog.String("method", out.Method),
		slog.Int("attempts", len(out.Attempts)))

	return Result{
		Candidate: candidate,
		Platform:  p.Key,
		Verdict:   out.Verdict,
		Method:    out.Method,
		Err:       out.Err,
		Attempts:  out.Attempts,
	}, nil
}

// ResolveMany checks one candidate across several platforms through a
// bounded worker pool. Every requested platform yields exactly one
// entry; individual probe failures never disturb the other entries.
// Unknown platform keys fail the whole call up front.
func (r *Resolver) ResolveMany(ctx context.Context, candidate string, keys []string) (map[string]Result, error) {
	for _, key := range keys {
		if _, err := r.registry.Get(key); err != nil {
			return nil, err
		}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	results := make([]Result, len(keys))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i, key := range keys {
		g.Go(func() error {
			// Single writer per slot.
			results[i] = r.resolveSlot(ctx, candidate, key)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]Result, len(keys))
	for _, res := range results {
		out[res.Platform] = res
	}
	return out, nil
}

// resolveSlot is Resolve with the timeout budget folded into the verdict
// instead of an error, so late slots still produce an entry.
func (r *Resolver) resolveSlot(ctx context.Context, candidate, key string) Result {
	if err := ctx.Err(); err != nil {
		return Result{
			Candidate: candidate,
			Platform:  key,
			Verdict:   probe.VerdictError,
			Err:       timeoutReason(err),
		}
	}

	res, err := r.Resolve(ctx, candidate, key)
	if err != nil {
		return Result{
			Candidate: candidate,
			Platform:  key,
			Verdict:   probe.VerdictError,
			Err:       err.Error(),
		}
	}
	return res
}

func timeoutReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "canceled"
}

// runStrategy dispatches to the strategy, converting a panic into an
// error verdict so one misbehaving platform cannot take down a batch.
func runStrategy(ctx context.Context, strat probe.Strategy, s *probe.Session, p platform.Platform, candidate string) (out probe.Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = probe.Outcome{
				Verdict: probe.VerdictError,
				Method:  p.Strategy,
				Err:     fmt.Sprintf("strategy panic: %v", rec),
			}
		}
	}()
	return strat.Probe(ctx, s, p, candidate)
}
