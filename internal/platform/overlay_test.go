package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmarden/handlescout/internal/errors"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platforms.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlay(t *testing.T) {
	path := writeOverlay(t, `
[[platform]]
key = "gitlab"
name = "GitLab"
description = "Code hosting"
url = "https://gitlab.com/{username}"
capability = "checkable"
strategy = "status"

[[platform]]
key = "mastodon"
url = "https://mastodon.social/@{username}"
`)

	platforms, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay() error = %v", err)
	}
	if len(platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(platforms))
	}

	if platforms[0].Key != "gitlab" || platforms[0].Strategy != StrategyStatus {
		t.Errorf("first platform = %+v", platforms[0])
	}

	// Defaults: name falls back to key, capability to manual.
	if platforms[1].Name != "mastodon" {
		t.Errorf("Name = %q, want key fallback", platforms[1].Name)
	}
	if !platforms[1].ManualOnly() {
		t.Error("capability should default to manual")
	}
}

func TestLoadOverlay_BadStrategy(t *testing.T) {
	path := writeOverlay(t, `
[[platform]]
key = "gitlab"
url = "https://gitlab.com/{username}"
capability = "checkable"
strategy = "instagram-api"
`)

	_, err := LoadOverlay(path)
	if !errors.Is(err, errors.ErrUnknownStrategy) {
		t.Errorf("error = %v, want ErrUnknownStrategy", err)
	}
}

func TestLoadOverlay_BadCapability(t *testing.T) {
	path := writeOverlay(t, `
[[platform]]
key = "gitlab"
url = "https://gitlab.com/{username}"
capability = "sometimes"
`)

	_, err := LoadOverlay(path)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadRegistry_MergesOverlay(t *testing.T) {
	path := writeOverlay(t, `
[[platform]]
key = "gitlab"
url = "https://gitlab.com/{username}"
capability = "checkable"
strategy = "status"
`)

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if len(r.All()) != 13 {
		t.Errorf("got %d platforms, want builtin 12 + 1 overlay", len(r.All()))
	}
	if _, err := r.Get("gitlab"); err != nil {
		t.Errorf("overlay platform should be registered: %v", err)
	}
}

func TestLoadRegistry_MissingFileIsFine(t *testing.T) {
	r, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if len(r.All()) != 12 {
		t.Errorf("got %d platforms, want builtin 12", len(r.All()))
	}
}

func TestLoadRegistry_DuplicateKeyRejected(t *testing.T) {
	path := writeOverlay(t, `
[[platform]]
key = "github"
url = "https://github.example/{username}"
capability = "checkable"
strategy = "status"
`)

	if _, err := LoadRegistry(path); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("error = %v, want ErrAlreadyRegistered", err)
	}
}
