package commands

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
)

// resetGenerateFlags resets the generate command flags to their defaults.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateCount = 1
		generateStyle = string(gen.StyleRandom)
		generateLength = 0
		generateInteractive = false
		generateJSON = false
	})
}

func TestRunGenerate_JSON(t *testing.T) {
	resetGenerateFlags(t)
	generateCount = 3
	generateStyle = "adjective_noun"
	generateJSON = true

	var buf bytes.Buffer
	if err := runGenerateWithWriter(&buf); err != nil {
		t.Fatalf("runGenerateWithWriter() error = %v", err)
	}

	var out []candidateJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d candidates, want 3", len(out))
	}

	safe := regexp.MustCompile(`^[a-z0-9_-]+$`)
	for _, c := range out {
		if c.Style != "adjective_noun" {
			t.Errorf("Style = %q, want adjective_noun", c.Style)
		}
		if !safe.MatchString(c.Name) {
			t.Errorf("candidate %q outside the safe alphabet", c.Name)
		}
	}
}

func TestRunGenerate_Tabular(t *testing.T) {
	resetGenerateFlags(t)
	generateCount = 2
	generateStyle = "leetspeak"

	var buf bytes.Buffer
	if err := runGenerateWithWriter(&buf); err != nil {
		t.Fatalf("runGenerateWithWriter() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("NAME")) {
		t.Error("tabular output missing header")
	}
}

func TestRunGenerate_UnknownStyle(t *testing.T) {
	resetGenerateFlags(t)
	generateStyle = "haiku"

	err := runGenerateWithWriter(&bytes.Buffer{})
	if !errors.Is(err, errors.ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("unknown style should surface as an ExitError")
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestRunGenerate_BadCount(t *testing.T) {
	resetGenerateFlags(t)
	generateCount = 0

	if err := runGenerateWithWriter(&bytes.Buffer{}); err == nil {
		t.Error("count below 1 should fail")
	}
}

func TestGenerateCommand_Metadata(t *testing.T) {
	if generateCmd.Use != "generate" {
		t.Errorf("Use = %q", generateCmd.Use)
	}
	for _, flag := range []string{"count", "style", "length", "interactive", "json"} {
		if generateCmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}
