package platform

import (
	"testing"

	"github.com/tmarden/handlescout/internal/errors"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	p := Platform{
		Key:         "example",
		Name:        "Example",
		URLTemplate: "https://example.com/{username}",
		Capability:  Checkable,
		Strategy:    StrategyStatus,
	}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := r.Get("example")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Example" {
		t.Errorf("Name = %q, want Example", got.Name)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	if !errors.Is(err, errors.ErrUnknownPlatform) {
		t.Errorf("error = %v, want ErrUnknownPlatform", err)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	p := Platform{
		Key:         "example",
		URLTemplate: "https://example.com/{username}",
		Capability:  ManualOnly,
	}

	if err := r.Register(p); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(p); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegistry_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		p       Platform
		wantErr error
	}{
		{
			name:    "empty key",
			p:       Platform{URLTemplate: "https://example.com/{username}", Capability: ManualOnly},
			wantErr: ErrInvalidKey,
		},
		{
			name:    "uppercase key",
			p:       Platform{Key: "Example", URLTemplate: "https://example.com/{username}", Capability: ManualOnly},
			wantErr: ErrInvalidKey,
		},
		{
			name:    "template without placeholder",
			p:       Platform{Key: "x", URLTemplate: "https://example.com/profile", Capability: ManualOnly},
			wantErr: errors.ErrInvalidTemplate,
		},
		{
			name:    "template not absolute",
			p:       Platform{Key: "x", URLTemplate: "/users/{username}", Capability: ManualOnly},
			wantErr: errors.ErrInvalidTemplate,
		},
		{
			name:    "checkable without strategy",
			p:       Platform{Key: "x", URLTemplate: "https://example.com/{username}", Capability: Checkable},
			wantErr: errors.ErrUnknownStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileURL(t *testing.T) {
	p := Platform{
		Key:         "tiktok",
		URLTemplate: "https://tiktok.com/@{username}",
		Capability:  Checkable,
		Strategy:    StrategyStatus,
	}

	got, err := p.ProfileURL("cool_dev-1")
	if err != nil {
		t.Fatalf("ProfileURL() error = %v", err)
	}
	if got != "https://tiktok.com/@cool_dev-1" {
		t.Errorf("ProfileURL() = %q", got)
	}
}

func TestProfileURL_UnsafeCandidate(t *testing.T) {
	p := builtin[0]

	for _, bad := range []string{"", "Has Upper", "semi;colon", "slash/y", "percent%20"} {
		if _, err := p.ProfileURL(bad); !errors.Is(err, errors.ErrUnsafeCandidate) {
			t.Errorf("ProfileURL(%q) error = %v, want ErrUnsafeCandidate", bad, err)
		}
	}
}

func TestBuiltin_Table(t *testing.T) {
	r := Builtin()

	if len(r.All()) != 12 {
		t.Errorf("builtin table has %d platforms, want 12", len(r.All()))
	}

	github, err := r.Get("github")
	if err != nil {
		t.Fatal(err)
	}
	if github.ManualOnly() {
		t.Error("github should be checkable")
	}
	if github.Strategy != StrategyStatus {
		t.Errorf("github strategy = %q, want %q", github.Strategy, StrategyStatus)
	}

	discord, err := r.Get("discord")
	if err != nil {
		t.Fatal(err)
	}
	if !discord.ManualOnly() {
		t.Error("discord should be manual-only")
	}
	if discord.Strategy != "" {
		t.Errorf("manual platforms carry no strategy, got %q", discord.Strategy)
	}
}

func TestBuiltin_CheckableSubset(t *testing.T) {
	r := Builtin()

	checkable := map[string]bool{}
	for _, p := range r.Checkable() {
		checkable[p.Key] = true
	}

	for _, key := range []string{"github", "steam", "twitter", "instagram", "tiktok", "youtube", "snapchat"} {
		if !checkable[key] {
			t.Errorf("%s should be in the checkable subset", key)
		}
	}
	for _, key := range []string{"discord", "reddit", "twitch", "spotify", "linkedin"} {
		if checkable[key] {
			t.Errorf("%s should not be in the checkable subset", key)
		}
	}
}

func TestRegistry_KeysOrder(t *testing.T) {
	r := Builtin()
	keys := r.Keys()

	if len(keys) != 12 {
		t.Fatalf("got %d keys, want 12", len(keys))
	}
	if keys[0] != "github" {
		t.Errorf("first key = %q, want github (registration order)", keys[0])
	}
}
