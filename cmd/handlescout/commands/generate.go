package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
	"github.com/tmarden/handlescout/internal/randx"
)

var (
	generateCount       int
	generateStyle       string
	generateLength      int
	generateInteractive bool
	generateJSON        bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of candidates to generate")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", string(gen.StyleRandom), "generation style (see handlescout generate --help)")
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "candidate length (random style only, default 8)")
	generateCmd.Flags().BoolVarP(&generateInteractive, "interactive", "i", false, "pick the style interactively")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate username candidates",
	Long: `Generate username candidates without checking availability.

Styles:
  random          pronounceable consonant-vowel string (honors --length)
  adjective_noun  adjective plus noun, sometimes with a digit
  noun_number     short noun padded with digits
  minimal         short word or tight word pair
  word_mash       two nouns joined by a separator
  leetspeak       a word with letters swapped for digits`,
	Example: `  # One pronounceable candidate
  handlescout generate

  # Ten adjective-noun candidates
  handlescout generate -n 10 -s adjective_noun

  # Pick the style from a fuzzy picker
  handlescout generate -i

  See Also: handlescout check, handlescout find`,
	RunE: runGenerate,
}

// candidateJSON represents a candidate in JSON output format.
type candidateJSON struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

func runGenerate(_ *cobra.Command, _ []string) error {
	return runGenerateWithWriter(os.Stdout)
}

// runGenerateWithWriter allows injecting a writer for testing.
func runGenerateWithWriter(w io.Writer) error {
	styleName := generateStyle
	if generateInteractive {
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

	if generateCount < 1 {
		return errors.NewUserError(errors.Newf("count must be at least 1, got %d", generateCount), "")
	}

	g := gen.New(randx.NewSource())
	candidates, err := g.GenerateMany(generateCount, style, generateLength)
	if err != nil {
		return err
	}

	if generateJSON {
		return outputCandidatesJSON(w, candidates)
	}
	return outputCandidatesTabular(w, candidates)
}

func outputCandidatesJSON(w io.Writer, candidates []gen.Candidate) error {
	out := make([]candidateJSON, len(candidates))
	for i, c := range candidates {
		out[i] = candidateJSON{Name: c.Name, Style: string(c.Style)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputCandidatesTabular(w io.Writer, candidates []gen.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sSTYLE%s\n", colorBold, colorReset, colorBold, colorReset)
	for _, c := range candidates {
		fmt.Fprintf(tw, "%s%s%s\t%s\n", colorGreen, c.Name, colorReset, c.Style)
	}
	return tw.Flush()
}
