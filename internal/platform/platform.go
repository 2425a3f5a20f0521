// Package platform defines the static table of external platforms and
// the registry used to look them up.
package platform

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/tmarden/handlescout/internal/errors"
)

// Capability states whether a platform supports automated checking.
type Capability string

const (
	// Checkable platforms have a registered probe strategy.
	Checkable Capability = "checkable"

	// ManualOnly platforms cannot be probed automatically and always
	// resolve to an unknown verdict without any network call.
	ManualOnly Capability = "manual"
)

// Placeholder is the token substituted with the candidate in URL templates.
const Placeholder = "{username}"

// Platform describes one external platform. Immutable once registered.
type Platform struct {
	// Key identifies the platform in lookups and flags.
	Key string

	// Name is the human-readable display name.
	Name string

	// Description is a one-line blurb shown in listings.
	Description string

	// URLTemplate is the public profile URL with a {username} placeholder.
	URLTemplate string

	// Capability states whether this platform can be probed.
	Capability Capability

	// Strategy names the probe strategy registered for this platform.
	// Empty for ManualOnly platforms.
	Strategy string
}

// ManualOnly reports whether the platform lacks an automated check.
func (p Platform) ManualOnly() bool {
	return p.Capability == ManualOnly
}

// safeCandidate is the only character set templates are guaranteed to
// embed safely. It matches the candidate generator's output alphabet.
var safeCandidate = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ProfileURL substitutes the candidate into the platform's URL template.
// Returns errors.ErrUnsafeCandidate if the candidate contains characters
// the template cannot safely embed.
func (p Platform) ProfileURL(candidate string) (string, error) {
	if !safeCandidate.MatchString(candidate) {
		return "", errors.Wrapf(errors.ErrUnsafeCandidate, "%q", candidate)
	}
	return strings.ReplaceAll(p.URLTemplate, Placeholder, candidate), nil
}

// Registry holds the platform table. It is built once at startup and is
// safe for concurrent lookups.
type Registry struct {
	mu        sync.RWMutex
	platforms map[string]Platform
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		platforms: make(map[string]Platform),
	}
}

// Sentinel errors for registry operations.
var (
	// ErrAlreadyRegistered is returned when registering a key that is in use.
	ErrAlreadyRegistered = errors.New("platform already registered")

	// ErrInvalidKey is returned for empty or malformed platform keys.
	ErrInvalidKey = errors.New("invalid platform key")
)

var validKey = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Register adds a platform to the registry. It fails if the key is
// malformed, already registered, or the URL template is unusable.
func (r *Registry) Register(p Platform) error {
	if !validKey.MatchString(p.Key) {
		return errors.Wrapf(ErrInvalidKey, "%q", p.Key)
	}
	if err := validateTemplate(p.URLTemplate); err != nil {
		return errors.Wrapf(err, "platform %q", p.Key)
	}
	if !p.ManualOnly() && p.Strategy == "" {
		return errors.Wrapf(errors.ErrUnknownStrategy, "checkable platform %q has no strategy", p.Key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.platforms[p.Key]; exists {
		return errors.Wrapf(ErrAlreadyRegistered, "%q", p.Key)
	}

	r.platforms[p.Key] = p
	r.order = append(r.order, p.Key)
	return nil
}

// Get returns the platform for key, or errors.ErrUnknownPlatform.
func (r *Registry) Get(key string) (Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.platforms[key]
	if !ok {
		return Platform{}, errors.Wrapf(errors.ErrUnknownPlatform, "%q", key)
	}
	return p, nil
}

// All returns every platform in registration order.
func (r *Registry) All() []Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Platform, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.platforms[key])
	}
	return out
}

// Checkable returns the platforms with automated checks, in registration order.
func (r *Registry) Checkable() []Platform {
	var out []Platform
	for _, p := range r.All() {
		if !p.ManualOnly() {
			out = append(out, p)
		}
	}
	return out
}

// Keys returns every registered key in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// validateTemplate checks that a URL template carries the placeholder and
// parses as an absolute http(s) URL once substituted.
func validateTemplate(template string) error {
	if !strings.Contains(template, Placeholder) {
		return errors.Wrapf(errors.ErrInvalidTemplate, "missing %s placeholder", Placeholder)
	}

	probe := strings.ReplaceAll(template, Placeholder, "probe")
	u, err := url.Parse(probe)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidTemplate, err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return errors.Wrapf(errors.ErrInvalidTemplate, "%q is not an absolute http(s) URL", template)
	}
	return nil
}
