package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dan-hart/phonetictext/internal"
	"github.com/dan-hart/phonetictext/internal/audio"
	"github.com/dan-hart/phonetictext/internal/batch"
	"github.com/dan-hart/phonetictext/internal/cli"
	"github.com/dan-hart/phonetictext/internal/phonetic"
)

// Processor handles the main phrase processing logic
type Processor struct {
	flags     *cli.Flags
	converter *phonetic.Converter
	out       io.Writer
}

// NewProcessor creates a new phrase processor
func NewProcessor(flags *cli.Flags) *Processor {
	opts := flags.ConverterOptions()

	// Config file values apply when the flags kept their defaults
	if !flags.CasePrefix && viper.IsSet("spelling.case_prefix") {
		opts.IncludeCasePrefix = viper.GetBool("spelling.case_prefix")
	}
	if flags.Delimiter == "" && viper.IsSet("spelling.delimiter") {
		if d := viper.GetString("spelling.delimiter"); d != "" {
			opts.Delimiter = d
			opts.NewLineOutput = false
		}
	}

	return &Processor{
		flags:     flags,
		converter: phonetic.New(opts),
		out:       os.Stdout,
	}
}

// ProcessBatch processes multiple phrases from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Fprintf(p.out, "\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Phrase)

		if err := p.ProcessPhrase(entry.Phrase, entry.Name); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Phrase, err)
			errorCount++
			// Continue with next phrase
		} else {
			processedCount++
		}
	}

	// Print summary
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total phrases: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(p.out, "================================\n")

	return nil
}

// ProcessSinglePhrase processes a single phrase from the command line
func (p *Processor) ProcessSinglePhrase(phrase string) error {
	return p.ProcessPhrase(phrase, "")
}

// ProcessPhrase encodes (or decodes) one phrase and handles the
// requested outputs. name, when non-empty, picks the transcript file
// names.
func (p *Processor) ProcessPhrase(phrase, name string) error {
	if p.flags.Decode {
		fmt.Fprintln(p.out, p.converter.Decode(phrase))
		return nil
	}

	spelling := p.converter.Encode(phrase)
	fmt.Fprintln(p.out, spelling)

	if p.flags.SaveTranscript || p.flags.Speak {
		entryDir, err := p.findOrCreateEntryDirectory(phrase, name)
		if err != nil {
			return err
		}

		if p.flags.SaveTranscript {
			transcriptFile := filepath.Join(entryDir, "spelling.txt")
			if err := os.WriteFile(transcriptFile, []byte(spelling+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to save transcript: %w", err)
			}
			fmt.Fprintf(p.out, "  Saved transcript to %s\n", transcriptFile)
		}

		if p.flags.Speak {
			fmt.Fprintf(p.out, "  Synthesizing audio...\n")
			if err := p.generateAudio(phrase, entryDir); err != nil {
				return fmt.Errorf("audio synthesis failed: %w", err)
			}
		}
	}

	return nil
}

// generateAudio synthesizes the spoken spelling of a phrase into the
// entry directory.
func (p *Processor) generateAudio(phrase, entryDir string) error {
	providerConfig := &audio.Config{
		Provider:     "openai",
		OutputDir:    entryDir,
		OutputFormat: p.flags.AudioFormat,

		// OpenAI settings
		OpenAIKey:         cli.GetOpenAIKey(),
		OpenAIModel:       p.flags.OpenAIModel,
		OpenAIVoice:       p.flags.OpenAIVoice,
		OpenAISpeed:       p.flags.OpenAISpeed,
		OpenAIInstruction: p.flags.OpenAIInstruction,

		// Caching
		EnableCache: !p.flags.NoCache,
		CachePath:   viper.GetString("audio.cache_path"),
	}

	// Set defaults
	if providerConfig.OpenAIVoice == "" {
		providerConfig.OpenAIVoice = "alloy"
	}
	if providerConfig.CachePath == "" {
		home, _ := os.UserHomeDir()
		providerConfig.CachePath = filepath.Join(home, ".cache", "phonetictext", "audio.db")
	}

	// Use config file values if not overridden by flags
	if p.flags.OpenAIModel == "gpt-4o-mini-tts" && viper.IsSet("audio.openai_model") {
		providerConfig.OpenAIModel = viper.GetString("audio.openai_model")
	}
	if p.flags.OpenAISpeed == 0.9 && viper.IsSet("audio.openai_speed") {
		providerConfig.OpenAISpeed = viper.GetFloat64("audio.openai_speed")
	}
	if p.flags.OpenAIInstruction == "" && viper.IsSet("audio.openai_instruction") {
		providerConfig.OpenAIInstruction = viper.GetString("audio.openai_instruction")
	}

	provider, err := audio.NewProvider(providerConfig)
	if err != nil {
		// Without an OpenAI key, fall back to local espeak-ng
		if providerConfig.OpenAIKey == "" {
			fmt.Fprintf(os.Stderr, "Warning: no OpenAI key configured, falling back to espeak-ng\n")
			providerConfig.Provider = "espeak"
			provider, err = audio.NewProvider(providerConfig)
		}
		if err != nil {
			return err
		}
	}

	outputFile := filepath.Join(entryDir, fmt.Sprintf("spelling.%s", p.flags.AudioFormat))

	// Speak the phonetic words, not the raw line format
	script := SpeechScript(p.converter, phrase)

	ctx := context.Background()
	if err := provider.GenerateAudio(ctx, script, outputFile); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "  Saved audio to %s\n", outputFile)
	return nil
}

// SpeechScript renders the spelling of a phrase as natural dictation
// text: one phonetic word per character followed by a comma pause,
// e.g. "Capital Alpha, bravo, Space, Niner, Stop". The line format
// with its colons and echoes reads badly when spoken verbatim.
func SpeechScript(c *phonetic.Converter, phrase string) string {
	var words []string
	for _, line := range c.EncodeLines(phrase) {
		switch {
		case line == "":
			// skip
		case line == phonetic.SpaceToken:
			words = append(words, "Space")
		case line == phonetic.StopToken:
			words = append(words, "Stop")
		default:
			if idx := strings.Index(line, ": "); idx >= 0 {
				words = append(words, line[idx+2:])
			} else if idx := strings.Index(line, " "); idx >= 0 {
				words = append(words, line[idx+1:])
			} else {
				words = append(words, line)
			}
		}
	}
	return strings.Join(words, ", ")
}

// Helper methods

func (p *Processor) findOrCreateEntryDirectory(phrase, name string) (string, error) {
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Try to find an existing entry first
	if dir := p.findEntryDirectory(phrase); dir != "" {
		return dir, nil
	}

	entryID := name
	if entryID == "" {
		entryID = internal.GenerateEntryID(phrase)
	} else {
		entryID = internal.SanitizeFilename(entryID)
	}

	entryDir := filepath.Join(p.flags.OutputDir, entryID)
	if err := os.MkdirAll(entryDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create entry directory: %w", err)
	}

	// Save phrase metadata
	metadataFile := filepath.Join(entryDir, "phrase.txt")
	if err := os.WriteFile(metadataFile, []byte(phrase), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save phrase metadata: %v\n", err)
	}

	return entryDir, nil
}

func (p *Processor) findEntryDirectory(phrase string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	// Look through all directories to find one with a matching phrase.txt
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		phraseFile := filepath.Join(dirPath, "phrase.txt")

		if data, err := os.ReadFile(phraseFile); err == nil {
			if strings.TrimSpace(string(data)) == phrase {
				return dirPath
			}
		}
	}

	return ""
}
