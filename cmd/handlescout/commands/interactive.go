package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/gen"
)

// styleBlurbs describe each generation style in the interactive picker.
var styleBlurbs = map[gen.Style]string{
	gen.StyleRandom:        "Pronounceable consonant-vowel string.\n\nExample: bakemotu",
	gen.StyleAdjectiveNoun: "Adjective plus noun, sometimes with a trailing digit.\n\nExample: quietfox3",
	gen.StyleNounNumber:    "Short noun padded with digits up to a usable length.\n\nExample: wolf742",
	gen.StyleMinimal:       "Short word, or two short words run together.\n\nExample: echoix",
	gen.StyleWordMash:      "Two nouns joined by nothing, underscore, or hyphen.\n\nExample: storm_pixel",
	gen.StyleLeetspeak:     "A word with letters swapped for look-alike digits.\n\nExample: sh4d0w",
}

// pickStyle opens a fuzzy picker over the generation styles. The bool
// is false when the user aborted the picker.
func pickStyle() (string, bool, error) {
	styles := gen.Styles()

	idx, err := fuzzyfinder.Find(
		styles,
		func(i int) string {
			return string(styles[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Style: %s\n\n%s", styles[i], styleBlurbs[styles[i]])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "interactive style selection failed")
	}

	return string(styles[idx]), true, nil
}
