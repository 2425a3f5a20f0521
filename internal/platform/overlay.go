package platform

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tmarden/handlescout/internal/errors"
)

// overlayFile is the on-disk shape of platforms.toml.
type overlayFile struct {
	Platform []overlayEntry `toml:"platform"`
}

type overlayEntry struct {
	Key         string `toml:"key"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	URL         string `toml:"url"`
	Capability  string `toml:"capability"`
	Strategy    string `toml:"strategy"`
}

// LoadOverlay parses a user platform overlay file. Entries may add new
// platforms on top of the builtin table; only the generic strategies
// (status, content) are available to overlay platforms.
//
//	[[platform]]
//	key = "gitlab"
//	name = "GitLab"
//	url = "https://gitlab.com/{username}"
//	capability = "checkable"
//	strategy = "status"
func LoadOverlay(path string) ([]Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading platform overlay %s", path)
	}

	var file overlayFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing platform overlay %s", path)
	}

	platforms := make([]Platform, 0, len(file.Platform))
	for _, e := range file.Platform {
		p := Platform{
			Key:         e.Key,
			Name:        e.Name,
			Description: e.Description,
			URLTemplate: e.URL,
			Capability:  Capability(e.Capability),
			Strategy:    e.Strategy,
		}
		if p.Name == "" {
			p.Name = p.Key
		}
		if p.Capability == "" {
			p.Capability = ManualOnly
		}
		if p.Capability != Checkable && p.Capability != ManualOnly {
			return nil, errors.Wrapf(errors.ErrInvalidConfig,
				"platform %q: capability must be %q or %q", e.Key, Checkable, ManualOnly)
		}
		if p.Capability == Checkable && p.Strategy != StrategyStatus && p.Strategy != StrategyContent {
			return nil, errors.Wrapf(errors.ErrUnknownStrategy,
				"platform %q: overlay platforms support strategies %q and %q", e.Key, StrategyStatus, StrategyContent)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// LoadRegistry builds the runtime registry: the builtin table plus the
// overlay at path, when the file exists. An empty path skips the overlay.
func LoadRegistry(path string) (*Registry, error) {
	r := Builtin()
	if path == "" {
		return r, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return r, nil
	}

	overlay, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	for _, p := range overlay {
		if err := r.Register(p); err != nil {
			return nil, errors.Wrap(err, "registering overlay platform")
		}
	}
	return r, nil
}
