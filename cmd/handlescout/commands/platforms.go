package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/platform"
)

var platformsJSON bool

func init() {
	platformsCmd.Flags().BoolVar(&platformsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(platformsCmd)
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Long: `List every platform handlescout knows about.

Checkable platforms have an automated probe. Manual platforms resolve
to unknown and are reported with their profile URL instead.

Extra platforms can be added through platforms.toml in the config
directory; entries there may use the status or content strategies.`,
	Example: `  # List platforms
  handlescout platforms

  # Output as JSON
  handlescout platforms --json`,
	RunE: runPlatforms,
}

// platformJSON represents a platform in JSON output format.
type platformJSON struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URLTemplate string `json:"url_template"`
	Checkable   bool   `json:"checkable"`
	Strategy    string `json:"strategy,omitempty"`
}

func runPlatforms(_ *cobra.Command, _ []string) error {
	return runPlatformsWithWriter(os.Stdout)
}

// runPlatformsWithWriter allows injecting a writer for testing.
func runPlatformsWithWriter(w io.Writer) error {
	reg, err := loadRegistry()
	if err != nil {
		return errors.NewConfigError(err)
	}

	if platformsJSON {
		return outputPlatformsJSON(w, reg.All())
	}
	return outputPlatformsTabular(w, reg.All())
}

func outputPlatformsJSON(w io.Writer, platforms []platform.Platform) error {
	out := make([]platformJSON, len(platforms))
	for i, p := range platforms {
		out[i] = platformJSON{
			Key:         p.Key,
			Name:        p.Name,
			Description: p.Description,
			URLTemplate: p.URLTemplate,
			Checkable:   !p.ManualOnly(),
			Strategy:    p.Strategy,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputPlatformsTabular(w io.Writer, platforms []platform.Platform) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sKEY%s\t%sNAME%s\t%sCHECK%s\t%sPROFILE URL%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, p := range platforms {
		check := colorGreen + "auto" + colorReset
		if p.ManualOnly() {
			check = colorGray + "manual" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorCyan, p.Key, colorReset, p.Name, check, p.URLTemplate)
	}
	return tw.Flush()
}
