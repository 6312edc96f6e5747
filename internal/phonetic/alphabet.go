package phonetic

// Tokens shared by every alphabet. Any implementation that wants to
// interoperate with text produced here must reproduce these spellings
// exactly.
const (
	// SpaceToken is emitted for each space character, without a colon
	// and without echoing the character.
	SpaceToken = "SPACE"

	// StopToken terminates every encoded sequence.
	StopToken = "STOP"
)

// Alphabet holds the spelling tables for one language. The tables are
// never mutated after construction, so a single Alphabet is safe to
// share between any number of converters and goroutines.
type Alphabet struct {
	Letters  map[rune]string
	Digits   map[rune]string
	Specials map[rune]string
}

// NATO returns the default English alphabet: ICAO/NATO words for
// letters, spelled-out digits (with the radiotelephony "Niner" for 9),
// and plain names for common ASCII symbols. Lowercase letters carry
// lowercase words so the spoken form preserves the case of the table
// entry.
func NATO() *Alphabet {
	return &Alphabet{
		Letters:  natoLetters,
		Digits:   natoDigits,
		Specials: natoSpecials,
	}
}

var natoLetters = map[rune]string{
	'A': "Alpha", 'B': "Bravo", 'C': "Charlie", 'D': "Delta",
	'E': "Echo", 'F': "Foxtrot", 'G': "Golf", 'H': "Hotel",
	'I': "India", 'J': "Juliett", 'K': "Kilo", 'L': "Lima",
	'M': "Mike", 'N': "November", 'O': "Oscar", 'P': "Papa",
	'Q': "Quebec", 'R': "Romeo", 'S': "Sierra", 'T': "Tango",
	'U': "Uniform", 'V': "Victor", 'W': "Whiskey", 'X': "Xray",
	'Y': "Yankee", 'Z': "Zulu",

	'a': "alpha", 'b': "bravo", 'c': "charlie", 'd': "delta",
	'e': "echo", 'f': "foxtrot", 'g': "golf", 'h': "hotel",
	'i': "india", 'j': "juliett", 'k': "kilo", 'l': "lima",
	'm': "mike", 'n': "november", 'o': "oscar", 'p': "papa",
	'q': "quebec", 'r': "romeo", 's': "sierra", 't': "tango",
	'u': "uniform", 'v': "victor", 'w': "whiskey", 'x': "xray",
	'y': "yankee", 'z': "zulu",
}

// natoDigits spells 9 as "Niner" per ICAO radiotelephony. Earlier
// versions of this format used "Nine"; that spelling is not supported.
var natoDigits = map[rune]string{
	'0': "Zero", '1': "One", '2': "Two", '3': "Three", '4': "Four",
	'5': "Five", '6': "Six", '7': "Seven", '8': "Eight", '9': "Niner",
}

var natoSpecials = map[rune]string{
	'.':  "Dot",
	',':  "Comma",
	';':  "Semicolon",
	':':  "Colon",
	'!':  "Exclamation Mark",
	'?':  "Question Mark",
	'\'': "Apostrophe",
	'"':  "Quotation Mark",
	'-':  "Dash",
	'_':  "Underscore",
	'/':  "Forward Slash",
	'\\': "Backslash",
	'(':  "Open Parenthesis",
	')':  "Close Parenthesis",
	'[':  "Open Bracket",
	']':  "Close Bracket",
	'{':  "Open Brace",
	'}':  "Close Brace",
	'@':  "At Sign",
	'#':  "Hash",
	'$':  "Dollar Sign",
	'%':  "Percent",
	'^':  "Caret",
	'&':  "Ampersand",
	'*':  "Asterisk",
	'+':  "Plus",
	'=':  "Equals",
	'<':  "Less Than",
	'>':  "Greater Than",
	'|':  "Pipe",
	'~':  "Tilde",
	'`':  "Backtick",
}
