package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider interface for espeak-ng. It is
// the offline fallback when no OpenAI key is configured.
type ESpeakProvider struct {
	voice string
	speed int
}

// NewESpeakProvider creates a new espeak-ng provider
func NewESpeakProvider(config *Config) (Provider, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	voice := config.ESpeakVoice
	if voice == "" {
		voice = "en"
	}
	speed := config.ESpeakSpeed
	if speed == 0 {
		speed = 150
	}

	return &ESpeakProvider{voice: voice, speed: speed}, nil
}

// GenerateAudio generates audio using espeak-ng
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateDictationText(text); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(outputFile))
	switch ext {
	case ".wav":
		return p.generateWAV(ctx, text, outputFile)
	case ".mp3":
		return p.generateMP3(ctx, text, outputFile)
	default:
		if !strings.HasSuffix(outputFile, ".mp3") {
			outputFile += ".mp3"
		}
		return p.generateMP3(ctx, text, outputFile)
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}

// generateWAV renders text to a WAV file with espeak-ng.
func (p *ESpeakProvider) generateWAV(ctx context.Context, text, outputFile string) error {
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		"-v", p.voice,
		"-s", fmt.Sprintf("%d", p.speed),
		"-w", outputFile,
		text,
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// generateMP3 renders a temporary WAV and converts it with ffmpeg.
func (p *ESpeakProvider) generateMP3(ctx context.Context, text, outputFile string) error {
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	if err := p.generateWAV(ctx, text, tempWAV); err != nil {
		return err
	}

	if err := convertWAVToMP3(ctx, tempWAV, outputFile); err != nil {
		os.Remove(tempWAV)
		return err
	}

	return os.Remove(tempWAV)
}

// convertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func convertWAVToMP3(ctx context.Context, wavFile, mp3File string) error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
