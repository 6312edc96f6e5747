package phonetic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Options configures a Converter. Decode must be called with the same
// options used to encode, since the options determine how the phonetic
// text is segmented.
type Options struct {
	// IncludeCasePrefix prefixes letter lines with "Capital " or
	// "Lowercase ".
	IncludeCasePrefix bool

	// Delimiter joins phonetic lines when NewLineOutput is false.
	Delimiter string

	// NewLineOutput joins phonetic lines with "\n", ignoring
	// Delimiter.
	NewLineOutput bool

	// Alphabet overrides the spelling tables. Nil means NATO().
	Alphabet *Alphabet

	// IsEmoji overrides the emoji detection policy. Nil means the
	// package default.
	IsEmoji EmojiPredicate
}

// DefaultOptions returns the default configuration: no case prefixes,
// newline-joined output.
func DefaultOptions() Options {
	return Options{
		Delimiter:     "\n",
		NewLineOutput: true,
	}
}

// Converter encodes text to phonetic lines and decodes phonetic lines
// back to text. It is immutable after construction and safe for
// concurrent use.
type Converter struct {
	opts     Options
	alphabet *Alphabet
	isEmoji  EmojiPredicate
}

// New creates a converter from the given options, filling in defaults
// for zero-valued fields.
func New(opts Options) *Converter {
	if opts.Delimiter == "" {
		opts.Delimiter = "\n"
	}
	c := &Converter{
		opts:     opts,
		alphabet: opts.Alphabet,
		isEmoji:  opts.IsEmoji,
	}
	if c.alphabet == nil {
		c.alphabet = NATO()
	}
	if c.isEmoji == nil {
		c.isEmoji = IsEmoji
	}
	return c
}

// joiner returns the active line separator.
func (c *Converter) joiner() string {
	if c.opts.NewLineOutput {
		return "\n"
	}
	return c.opts.Delimiter
}

// Encode renders each grapheme cluster of input as one phonetic line,
// in input order, appends the terminator line, and joins the lines
// with the active separator. It never fails: unmapped characters echo
// themselves.
func (c *Converter) Encode(input string) string {
	return strings.Join(c.EncodeLines(input), c.joiner())
}

// EncodeLines returns the phonetic lines for input, terminator
// included, without joining them.
func (c *Converter) EncodeLines(input string) []string {
	var lines []string

	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		lines = append(lines, c.renderLine(gr.Str()))
	}
	return append(lines, StopToken)
}

// renderLine produces the phonetic line for one grapheme cluster.
// Letter, digit, emoji and unmapped lines use a ": " separator so the
// original character is recoverable as the first character of the
// line; special symbols use a single space; spaces collapse to the
// bare space token.
func (c *Converter) renderLine(cluster string) string {
	r, _ := utf8.DecodeRuneInString(cluster)

	switch c.classify(cluster) {
	case ClassSpace:
		return SpaceToken
	case ClassEmoji:
		return cluster + ": Emoji"
	case ClassLetterUpper:
		if c.opts.IncludeCasePrefix {
			return fmt.Sprintf("%c: Capital %s", r, c.alphabet.Letters[r])
		}
		return fmt.Sprintf("%c: %s", r, c.alphabet.Letters[r])
	case ClassLetterLower:
		if c.opts.IncludeCasePrefix {
			return fmt.Sprintf("%c: Lowercase %s", r, c.alphabet.Letters[r])
		}
		return fmt.Sprintf("%c: %s", r, c.alphabet.Letters[r])
	case ClassDigit:
		return fmt.Sprintf("%c: %s", r, c.alphabet.Digits[r])
	case ClassSpecial:
		return fmt.Sprintf("%c %s", r, c.alphabet.Specials[r])
	default:
		return cluster + ": " + cluster
	}
}

// Decode recovers the original text from phonetic lines produced by
// Encode under the same options. It never fails: a line that matches
// no known shape contributes its first character as a best-effort
// fallback, so malformed input degrades to a garbled string rather
// than an error. A missing terminator line is tolerated.
func (c *Converter) Decode(phoneticText string) string {
	trimmed := strings.TrimSpace(phoneticText)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, c.joiner())
	if lines[len(lines)-1] == StopToken {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	for _, line := range lines {
		switch {
		case line == "":
			// skip
		case line == SpaceToken:
			b.WriteByte(' ')
		default:
			// The original character is the first grapheme of the
			// line for every remaining shape, colon-separated or
			// not. Taking a full grapheme keeps multi-rune emoji
			// intact.
			gr := uniseg.NewGraphemes(line)
			if gr.Next() {
				b.WriteString(gr.Str())
			}
		}
	}
	return b.String()
}
