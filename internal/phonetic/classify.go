package phonetic

import (
	"unicode"
	"unicode/utf8"
)

// Class is the character class a grapheme cluster falls into. Every
// cluster belongs to exactly one class, determined by table lookup
// order; ClassUnmapped is the explicit fallback.
type Class int

const (
	ClassLetterUpper Class = iota
	ClassLetterLower
	ClassDigit
	ClassSpecial
	ClassSpace
	ClassEmoji
	ClassUnmapped
)

// minEmojiRune is the lowest code point the default emoji predicate
// accepts. Some Unicode property tables flag low ASCII and technical
// symbols (e.g. digits, '#', the dentistry symbols) as emoji; anything
// at or below this value is never treated as one.
const minEmojiRune rune = 0x238C

// EmojiPredicate reports whether a rune should be spoken as an emoji.
// The default heuristic is approximate and may misclassify rare
// symbols; callers can swap in their own policy via Options.
type EmojiPredicate func(r rune) bool

// IsEmoji is the default emoji predicate: a Symbol-other code point
// above minEmojiRune.
func IsEmoji(r rune) bool {
	return r > minEmojiRune && unicode.Is(unicode.So, r)
}

// classify assigns a class to one grapheme cluster. Multi-rune
// clusters (ZWJ sequences, flags, combining marks) are judged by their
// first rune: emoji if the predicate matches, otherwise unmapped.
func (c *Converter) classify(cluster string) Class {
	r, size := utf8.DecodeRuneInString(cluster)

	if size < len(cluster) {
		if c.isEmoji(r) {
			return ClassEmoji
		}
		return ClassUnmapped
	}

	switch {
	case r == ' ':
		return ClassSpace
	case c.alphabet.Letters[r] != "":
		if unicode.IsUpper(r) {
			return ClassLetterUpper
		}
		return ClassLetterLower
	case c.alphabet.Digits[r] != "":
		return ClassDigit
	case c.alphabet.Specials[r] != "":
		return ClassSpecial
	case c.isEmoji(r):
		return ClassEmoji
	default:
		return ClassUnmapped
	}
}
