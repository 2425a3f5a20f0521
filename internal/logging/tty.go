package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is attached to a terminal. It recognizes
// os.File and any writer exposing an Fd() method; everything else
// (buffers, pipes in tests) is treated as non-interactive.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether probe output and log records written to
// w may carry ANSI color codes. Color is off for non-TTY writers, when
// NO_COLOR is set (https://no-color.org), or when TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(w io.Writer, isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
