package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmarden/handlescout/internal/config"
	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/paths"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize handlescout configuration",
	Long: `Write the default configuration file.

Creates config.yaml in the handlescout config directory with the
built-in defaults: request timeout, pacing window, retry policy, and
the platform subset used by the search loop. Edit it afterwards to
taste, or override single values with HANDLESCOUT_* environment
variables.`,
	Example: `  # Initialize with a confirmation prompt
  handlescout init

  # Initialize non-interactively
  handlescout init --yes

  # Overwrite an existing configuration
  handlescout init --force

  See Also: handlescout platforms`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := paths.ConfigFile()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Printf("Configuration already exists at %s\n", configPath)
		fmt.Println("Use --force to overwrite")
		return nil
	}

	if !initYes {
		fmt.Println("This will create:")
		fmt.Printf("  %s\n", configPath)
		fmt.Println()

		if !confirm("Proceed?") {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}

// confirm prompts the user for a yes/no confirmation.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirm(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N] ", prompt)

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
