package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/logging"
	"github.com/tmarden/handlescout/internal/platform"
	"github.com/tmarden/handlescout/internal/resolve"
)

var (
	checkPlatforms []string
	checkAll       bool
	checkJSON      bool
)

func init() {
	checkCmd.Flags().StringSliceVarP(&checkPlatforms, "platform", "p", nil,
		"platform(s) to check (default: every checkable platform)")
	checkCmd.Flags().BoolVarP(&checkAll, "all", "a", false,
		"include manual-only platforms in the report")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <username>",
	Short: "Check a username's availability",
	Long: `Check whether a username is available on one or more platforms.

Each platform is probed with the approach it needs. Platforms with no
reliable automated check resolve to unknown and are listed with their
profile URL so you can verify by hand.`,
	Example: `  # Check on every checkable platform
  handlescout check octoseven

  # Check on specific platforms
  handlescout check octoseven -p github -p instagram

  # Include manual-only platforms and emit JSON
  handlescout check octoseven --all --json

  See Also: handlescout platforms, handlescout find`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	return runCheckWithWriter(cmd, os.Stdout, args[0])
}

// runCheckWithWriter allows injecting a writer for testing.
func runCheckWithWriter(cmd *cobra.Command, w io.Writer, candidate string) error {
	cfg := currentConfig()
	logger := logging.FromContext(cmd.Context())

	reg, err := loadRegistry()
	if err != nil {
		return errors.NewConfigError(err)
	}

	keys := checkPlatforms
	if len(keys) == 0 {
		for _, p := range reg.Checkable() {
			keys = append(keys, p.Key)
		}
		if checkAll {
			keys = reg.Keys()
		}
	}

	resolver := newResolver(cfg, reg, logger)
	results, err := resolver.ResolveMany(cmd.Context(), candidate, keys)
	if err != nil {
		if errors.Is(err, errors.ErrUnknownPlatform) {
			return errors.NewUserError(err, "Run 'handlescout platforms' to see valid platforms")
		}
		return err
	}

	if checkJSON {
		return outputCheckJSON(w, keys, results)
	}
	return outputCheckTabular(w, reg, candidate, keys, results)
}

func outputCheckJSON(w io.Writer, keys []string, results map[string]resolve.Result) error {
	ordered := make([]resolve.Result, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, results[key])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ordered)
}

func outputCheckTabular(w io.Writer, reg *platform.Registry, candidate string, keys []string, results map[string]resolve.Result) error {
	fmt.Fprintf(w, "%sResults for %s%s\n\n", colorBold, candidate, colorReset)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sPLATFORM%s\t%sVERDICT%s\t%sMETHOD%s\t%sDETAIL%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	var manual []string
	for _, key := range keys {
		res := results[key]
		detail := res.Err
		if res.Method == resolve.MethodManual {
			manual = append(manual, key)
			detail = "check by hand"
		}
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\t%s\n",
			colorCyan, key, colorReset, formatVerdict(res.Verdict), res.Method, truncate(detail, 60))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(manual) > 0 {
		sort.Strings(manual)
		fmt.Fprintf(w, "\n%sCheck manually:%s\n", colorBold, colorReset)
		for _, key := range manual {
			p, err := reg.Get(key)
			if err != nil {
				continue
			}
			if hint := manualCheckHint(p, candidate); hint != "" {
				fmt.Fprintln(w, hint)
			}
		}
	}

	return nil
}
