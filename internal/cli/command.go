package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dan-hart/phonetictext/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonetictext [text]",
		Short: "Phonetic spelling converter for voice dictation",
		Long: `phonetictext spells text out character by character using the NATO
phonetic alphabet, so it can be dictated unambiguously over a voice
channel, and converts such a spelling back into the original text.

Examples:
  phonetictext "Hello42"                  # Spell a string phonetically
  phonetictext --case-prefix "aB"         # Mark upper/lower case explicitly
  phonetictext --decode "A: Alpha
STOP"                                     # Recover the original text
  phonetictext --speak "pa55word" -o out  # Also synthesize audio via OpenAI TTS
  phonetictext --batch phrases.txt        # Process multiple phrases from file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "phonetictext", "transcripts")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonetictext.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory for saved transcripts and audio")
	cmd.Flags().BoolVarP(&flags.Decode, "decode", "d", false, "Decode phonetic text back to the original string")
	cmd.Flags().BoolVar(&flags.CasePrefix, "case-prefix", false, "Prefix letter lines with Capital/Lowercase markers")
	cmd.Flags().StringVar(&flags.Delimiter, "delimiter", "", "Join phonetic lines with this string instead of newlines")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process phrases from file (one per line)")
	cmd.Flags().BoolVar(&flags.SaveTranscript, "save", false, "Save the phonetic transcript under the output directory")
	cmd.Flags().BoolVar(&flags.Speak, "speak", false, "Synthesize the phonetic spelling as audio using OpenAI TTS")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (mp3, wav, opus, aac or flac)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI TTS models available for the current API key")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Bypass the synthesized audio cache")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the saved transcripts directory and exit")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", "", "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse (default: alloy)")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.Flags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g. 'pause briefly after every word')")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("spelling.case_prefix", cmd.Flags().Lookup("case-prefix"))
	viper.BindPFlag("spelling.delimiter", cmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.Flags().Lookup("openai-instruction"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phonetictext" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phonetictext")
	}

	// Environment variables
	viper.SetEnvPrefix("PHONETICTEXT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("audio.openai_key")
}
