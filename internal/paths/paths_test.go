package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir_EnvOverride(t *testing.T) {
	t.Setenv(envConfigDir, "/tmp/hs-test")

	if got := ConfigDir(); got != "/tmp/hs-test" {
		t.Errorf("ConfigDir() = %q, want /tmp/hs-test", got)
	}
	if got := ConfigFile(); got != filepath.Join("/tmp/hs-test", "config.yaml") {
		t.Errorf("ConfigFile() = %q", got)
	}
	if got := PlatformsFile(); got != filepath.Join("/tmp/hs-test", "platforms.toml") {
		t.Errorf("PlatformsFile() = %q", got)
	}
}

func TestConfigDir_Default(t *testing.T) {
	t.Setenv(envConfigDir, "")

	got := ConfigDir()
	if !strings.HasSuffix(got, AppName) {
		t.Errorf("ConfigDir() = %q, want suffix %q", got, AppName)
	}
}
