package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tmarden/handlescout/internal/config"
	"github.com/tmarden/handlescout/internal/paths"
	"github.com/tmarden/handlescout/internal/platform"
	"github.com/tmarden/handlescout/internal/probe"
	"github.com/tmarden/handlescout/internal/randx"
	"github.com/tmarden/handlescout/internal/resolve"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatVerdict renders a verdict with its conventional color.
func formatVerdict(v probe.Verdict) string {
	switch v {
	case probe.VerdictAvailable:
		return colorGreen + "available" + colorReset
	case probe.VerdictTaken:
		return colorRed + "taken" + colorReset
	case probe.VerdictError:
		return colorYellow + "error" + colorReset
	default:
		return colorGray + "unknown" + colorReset
	}
}

// loadRegistry builds the platform table: built-in entries plus any
// user overlay from platforms.toml.
func loadRegistry() (*platform.Registry, error) {
	path := paths.PlatformsFile()
	if _, err := os.Stat(path); err != nil {
		return platform.Builtin(), nil
	}
	return platform.LoadRegistry(path)
}

// newResolver wires a Resolver from the loaded configuration.
func newResolver(cfg *config.Config, reg *platform.Registry, logger *slog.Logger) *resolve.Resolver {
	return resolve.New(resolve.Options{
		Registry:   reg,
		Strategies: probe.Builtin(),
		Transport:  probe.NewHTTPTransport(cfg.HTTP.Timeout, cfg.HTTP.InsecureSkipVerify),
		Profile: probe.HeaderProfile{
			UserAgent:      cfg.HTTP.UserAgent,
			AcceptLanguage: cfg.HTTP.AcceptLanguage,
		},
		Pacer: probe.NewPacer(cfg.Pacing.Min, cfg.Pacing.Max, randx.NewSource()),
		Retry: probe.Policy{
			MaxAttempts:     cfg.Retry.MaxAttempts,
			InitialInterval: cfg.Retry.InitialInterval,
		},
		Concurrency: cfg.Resolve.Concurrency,
		Timeout:     cfg.Resolve.Timeout,
		Logger:      logger,
	})
}

// manualCheckHint renders the by-hand URL line for a manual-only platform.
func manualCheckHint(p platform.Platform, candidate string) string {
	url, err := p.ProfileURL(candidate)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("  %s%-12s%s %s", colorCyan, p.Key, colorReset, url)
}
