// Package main is the entry point for the handlescout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tmarden/handlescout/cmd/handlescout/commands"
	"github.com/tmarden/handlescout/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
