// Package gen produces candidate handle strings.
//
// All randomness flows through an injected randx.Rand, so every style is
// a pure function of the random source. Outputs are lower-case and drawn
// from the alphabet [a-z0-9_-].
package gen

import (
	"strings"

	"github.com/tmarden/handlescout/internal/errors"
	"github.com/tmarden/handlescout/internal/randx"
)

// Style selects a candidate generation algorithm.
type Style string

// Supported generation styles.
const (
	// StyleRandom produces a pronounceable string of alternating
	// consonants and vowels at the requested length.
	StyleRandom Style = "random"

	// StyleAdjectiveNoun joins an adjective and a noun with an optional
	// separator, sometimes appending a digit.
	StyleAdjectiveNoun Style = "adjective_noun"

	// StyleNounNumber is a noun, with a digit appended only when the
	// noun is short.
	StyleNounNumber Style = "noun_number"

	// StyleMinimal draws from a curated short-word set.
	StyleMinimal Style = "minimal"

	// StyleWordMash combines two nouns from disjoint partitions.
	StyleWordMash Style = "word_mash"

	// StyleLeetspeak substitutes digit look-alikes into a noun.
	StyleLeetspeak Style = "leetspeak"
)

// DefaultLength is used for the random style when no length is requested.
const DefaultLength = 8

// Styles returns all supported styles in display order.
func Styles() []Style {
	return []Style{
		StyleRandom,
		StyleAdjectiveNoun,
		StyleNounNumber,
		StyleMinimal,
		StyleWordMash,
		StyleLeetspeak,
	}
}

// ParseStyle converts a user-supplied style name into a Style.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.Wrapf(errors.ErrUnknownStyle, "%q", name)
}

// Candidate is a generated handle string, tagged with the style that
// produced it. Immutable once created.
type Candidate struct {
	Name  string
	Style Style
}

// Generator produces candidates using an injected random source.
type Generator struct {
	rng randx.Rand
}

// New creates a Generator drawing from rng.
func New(rng randx.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces one candidate in the given style. The length argument
// only affects StyleRandom; pass 0 for the default. Returns
// errors.ErrUnknownStyle for unrecognized styles.
func (g *Generator) Generate(style Style, length int) (Candidate, error) {
	var name string
	switch style {
	case StyleRandom:
		name = g.pronounceable(length)
	case StyleAdjectiveNoun:
		name = g.adjectiveNoun()
	case StyleNounNumber:
		name = g.nounNumber()
	case StyleMinimal:
		name = g.minimal()
	case StyleWordMash:
		name = g.wordMash()
	case StyleLeetspeak:
		name = g.leetspeak()
	default:
		return Candidate{}, errors.Wrapf(errors.ErrUnknownStyle, "%q", string(style))
	}

	return Candidate{Name: strings.ToLower(name), Style: style}, nil
}

// GenerateMany produces count independent candidates. Draws are not
// deduplicated; repeats are possible. A count below 1 yields an empty
// sequence.
func (g *Generator) GenerateMany(count int, style Style, length int) ([]Candidate, error) {
	if count < 0 {
		count = 0
	}
	candidates := make([]Candidate, 0, count)
	for i := 0; i < count; i++ {
		c, err := g.Generate(style, length)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// pronounceable alternates consonants (even index) and vowels (odd index).
func (g *Generator) pronounceable(length int) string {
	if length <= 0 {
		length = DefaultLength
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		if i%2 == 0 {
			b.WriteByte(consonants[g.rng.IntN(len(consonants))])
		} else {
			b.WriteByte(vowels[g.rng.IntN(len(vowels))])
		}
	}
	return b.String()
}

func (g *Generator) adjectiveNoun() string {
	adjective := randx.Choice(g.rng, adjectives)
	separator := randx.Choice(g.rng, separators)
	noun := randx.Choice(g.rng, nouns)

	name := adjective + separator + noun
	if randx.Chance(g.rng, 3) {
		name += randx.Choice(g.rng, digits)
	}
	return name
}

func (g *Generator) nounNumber() string {
	noun := randx.Choice(g.rng, nouns)
	// Only pad with a digit when the word is too short on its own.
	if len(noun) < 4 {
		return noun + randx.Choice(g.rng, digits)
	}
	return noun
}

func (g *Generator) minimal() string {
	word := randx.Choice(g.rng, shortWords)
	if len(word) <= 3 && randx.Chance(g.rng, 2) {
		return word + randx.Choice(g.rng, digits)
	}
	return word
}

func (g *Generator) wordMash() string {
	first := randx.Choice(g.rng, nouns[:20])
	second := randx.Choice(g.rng, nouns[20:40])

	if randx.Chance(g.rng, 2) {
		return first + second
	}
	return first + randx.Choice(g.rng, separators) + second
}

func (g *Generator) leetspeak() string {
	noun := randx.Choice(g.rng, nouns)

	var b strings.Builder
	b.Grow(len(noun))
	for _, r := range noun {
		if sub, ok := leetSubs[r]; ok && randx.Chance(g.rng, 3) {
			b.WriteRune(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
