package config

import (
	"github.com/tmarden/handlescout/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrPacingBounds indicates pacing.max is below pacing.min or a bound is negative.
	ErrPacingBounds = errors.New("pacing bounds must satisfy 0 <= min <= max")

	// ErrRetryAttempts indicates retry.max_attempts is out of range.
	ErrRetryAttempts = errors.New("retry.max_attempts must be between 1 and 5")

	// ErrSearchAttempts indicates search.max_attempts is not positive.
	ErrSearchAttempts = errors.New("search.max_attempts must be >= 1")

	// ErrConcurrency indicates resolve.concurrency is out of range.
	ErrConcurrency = errors.New("resolve.concurrency must be between 1 and 8")

	// ErrTimeout indicates a timeout value is negative.
	ErrTimeout = errors.New("timeout must not be negative")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Pacing.Min < 0 || cfg.Pacing.Max < cfg.Pacing.Min {
		errs = append(errs, ErrPacingBounds)
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.MaxAttempts > 5 {
		errs = append(errs, ErrRetryAttempts)
	}

	if cfg.Search.MaxAttempts < 1 {
		errs = append(errs, ErrSearchAttempts)
	}

	if cfg.Resolve.Concurrency < 1 || cfg.Resolve.Concurrency > 8 {
		errs = append(errs, ErrConcurrency)
	}

	if cfg.HTTP.Timeout < 0 || cfg.Resolve.Timeout < 0 || cfg.Retry.InitialInterval < 0 {
		errs = append(errs, ErrTimeout)
	}

	return errs
}
