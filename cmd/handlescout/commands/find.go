package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
	"github.com/tmarden/handlescout/internal/logging"
	"github.com/tmarden/handlescout/internal/randx"
	"github.com/tmarden/handlescout/internal/resolve"
)

var (
	findStyle       string
	findLength      int
	findMaxAttempts int
	findPlatforms   []string
	findInteractive bool
	findJSON        bool
)

func init() {
	findCmd.Flags().StringVarP(&findStyle, "style", "s", string(gen.StyleRandom), "generation style")
	findCmd.Flags().IntVarP(&findLength, "length", "l", 0, "candidate length (random style only, default 8)")
	findCmd.Flags().IntVar(&findMaxAttempts, "max-attempts", 0, "candidates to try before giving up (default from config)")
	findCmd.Flags().StringSliceVarP(&findPlatforms, "platform", "p", nil, "platform(s) that must be available (default from config)")
	findCmd.Flags().BoolVarP(&findInteractive, "interactive", "i", false, "pick the style interactively")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search for an available username",
	Long: `Generate candidates until one is available on every required platform.

Candidates are checked one platform at a time; the first taken verdict
abandons the candidate and moves on to the next one. The search gives
up after the configured number of attempts.`,
	Example: `  # Search with the defaults from config.yaml
  handlescout find

  # Adjective-noun style, free on GitHub and TikTok
  handlescout find -s adjective_noun -p github -p tiktok

  # Try harder
  handlescout find --max-attempts 50

  See Also: handlescout generate, handlescout check`,
	RunE: runFind,
}

// foundJSON represents a successful search in JSON output format.
type foundJSON struct {
	Candidate string           `json:"candidate"`
	Style     string           `json:"style"`
	Attempts  int              `json:"attempts"`
	Results   []resolve.Result `json:"results"`
}

func runFind(cmd *cobra.Command, _ []string) error {
	return runFindWithWriter(cmd, os.Stdout)
}

// runFindWithWriter allows injecting a writer for testing.
func runFindWithWriter(cmd *cobra.Command, w io.Writer) error {
	cfg := currentConfig()
	logger := logging.FromContext(cmd.Context())

	styleName := findStyle
	if findInteractive {
		picked, ok, err := pickStyle()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		styleName = picked
	}

	style, err := gen.ParseStyle(styleName)
	if err != nil {
		return errors.NewUserError(err, "Run 'handlescout generate --help' to see valid styles")
	}

	maxAttempts := findMaxAttempts
	if maxAttempts == 0 {
		maxAttempts = cfg.Search.MaxAttempts
	}

	keys := findPlatforms
	if len(keys) == 0 {
		keys = cfg.Search.Platforms
	}

	reg, err := loadRegistry()
	if err != nil {
		return errors.NewConfigError(err)
	}
	for _, key := range keys {
		p, err := reg.Get(key)
		if err != nil {
			return errors.NewUserError(err, "Run 'handlescout platforms' to see valid platforms")
		}
		if p.ManualOnly() {
			return errors.NewUserError(
				errors.Newf("platform %q has no automated check and cannot gate a search", key),
				"Pick checkable platforms; see 'handlescout platforms'")
		}
	}

	finder := resolve.NewFinder(
		gen.New(randx.NewSource()),
		newResolver(cfg, reg, logger),
		logger,
	)

	found, err := finder.FindAvailable(cmd.Context(), style, findLength, maxAttempts, keys)
	if err != nil {
		if errors.Is(err, errors.ErrNoHandleFound) {
			return errors.NewUserError(err, "Raise --max-attempts or check fewer platforms")
		}
		return err
	}

	if findJSON {
		return outputFoundJSON(w, keys, found)
	}
	return outputFoundText(w, keys, found)
}

func outputFoundJSON(w io.Writer, keys []string, found resolve.Found) error {
	out := foundJSON{
		Candidate: found.Candidate.Name,
		Style:     string(found.Candidate.Style),
		Attempts:  found.Attempts,
	}
	for _, key := range keys {
		out.Results = append(out.Results, found.Results[key])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputFoundText(w io.Writer, keys []string, found resolve.Found) error {
	fmt.Fprintf(w, "%sFound after %d attempt(s):%s %s%s%s\n\n",
		colorBold, found.Attempts, colorReset, colorGreen, found.Candidate.Name, colorReset)
	for _, key := range keys {
		res := found.Results[key]
		fmt.Fprintf(w, "  %s%-12s%s %s\n", colorCyan, key, colorReset, formatVerdict(res.Verdict))
	}
	return nil
}
