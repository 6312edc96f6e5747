package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dan-hart/phonetictext/internal/archive"
	"github.com/dan-hart/phonetictext/internal/cli"
	"github.com/dan-hart/phonetictext/internal/models"
	"github.com/dan-hart/phonetictext/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		if err := archive.ArchiveTranscripts(flags.OutputDir); err != nil {
			return fmt.Errorf("failed to archive transcripts: %w", err)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), os.Stdout)
		return lister.ListSpeechModels()
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	switch {
	case flags.BatchFile != "":
		// Process phrases from file
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	case len(args) > 0:
		// Process single phrase
		if err := proc.ProcessSinglePhrase(args[0]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("please provide text to spell or use --batch flag")
	}

	if flags.SaveTranscript || flags.Speak {
		fmt.Printf("\nDone! Materials saved to: %s\n", flags.OutputDir)
	}
	return nil
}
