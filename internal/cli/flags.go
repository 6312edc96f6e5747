package cli

import "github.com/dan-hart/phonetictext/internal/phonetic"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	OutputDir      string
	BatchFile      string
	Decode         bool
	CasePrefix     bool
	Delimiter      string
	SaveTranscript bool
	Speak          bool
	AudioFormat    string
	ListModels     bool
	NoCache        bool
	Archive        bool

	// OpenAI flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioFormat: "mp3",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAISpeed: 0.9,
	}
}

// ConverterOptions builds the converter configuration selected by the
// flags. A non-empty --delimiter switches off newline-joined output.
func (f *Flags) ConverterOptions() phonetic.Options {
	opts := phonetic.DefaultOptions()
	opts.IncludeCasePrefix = f.CasePrefix
	if f.Delimiter != "" {
		opts.Delimiter = f.Delimiter
		opts.NewLineOutput = false
	}
	return opts
}
