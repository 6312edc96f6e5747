package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client  *openai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
	cache   *Cache
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(config.OpenAIKey)

	// Trip the breaker after repeated API failures so batch runs fail
	// fast instead of hammering a dead or rate-limited endpoint.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-tts",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	provider := &OpenAIProvider{
		client:  client,
		config:  config,
		breaker: breaker,
	}

	if config.EnableCache && config.CachePath != "" {
		cache, err := OpenCache(config.CachePath)
		if err != nil {
			return nil, err
		}
		provider.cache = cache
	}

	return provider, nil
}

// GenerateAudio generates audio using OpenAI TTS
func (p *OpenAIProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateDictationText(text); err != nil {
		return err
	}

	outputFile, format := resolveResponseFormat(outputFile)

	cacheKey := CacheKey(text, p.config.OpenAIModel, p.config.OpenAIVoice,
		p.config.OpenAISpeed, p.config.OpenAIInstruction)

	// Check cache first
	if p.cache != nil {
		if data, ok, err := p.cache.Get(cacheKey); err == nil && ok {
			return writeAudioFile(outputFile, data)
		}
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: format,
	}

	// Add instructions for gpt-4o-mini-tts model
	if p.config.OpenAIInstruction != "" && p.config.OpenAIModel == "gpt-4o-mini-tts" {
		req.Instructions = p.config.OpenAIInstruction
	}

	// Make the API call through the circuit breaker
	result, err := p.breaker.Execute(func() (interface{}, error) {
		response, err := p.client.CreateSpeech(ctx, req)
		if err != nil {
			return nil, err
		}
		defer response.Close()

		data, err := io.ReadAll(response)
		if err != nil {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		return data, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return fmt.Errorf("OpenAI TTS temporarily disabled after repeated failures: %w", err)
		}
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}

	data := result.([]byte)
	if len(data) == 0 {
		return fmt.Errorf("no audio data received from OpenAI")
	}

	if err := writeAudioFile(outputFile, data); err != nil {
		return err
	}

	// Cache the result if caching is enabled
	if p.cache != nil {
		_ = p.cache.Put(cacheKey, string(format), data) // Ignore cache errors
	}

	return nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// We could make a test API call here, but that would use credits
	// For now, just check that we have a key
	return nil
}

// Close releases the cache database, if any.
func (p *OpenAIProvider) Close() error {
	if p.cache != nil {
		return p.cache.Close()
	}
	return nil
}

// resolveResponseFormat maps the output file extension to an OpenAI
// response format, defaulting to mp3 for unknown extensions.
func resolveResponseFormat(outputFile string) (string, openai.SpeechResponseFormat) {
	ext := strings.ToLower(filepath.Ext(outputFile))
	switch ext {
	case ".mp3":
		return outputFile, openai.SpeechResponseFormatMp3
	case ".wav":
		return outputFile, openai.SpeechResponseFormatWav
	case ".opus":
		return outputFile, openai.SpeechResponseFormatOpus
	case ".aac":
		return outputFile, openai.SpeechResponseFormatAac
	case ".flac":
		return outputFile, openai.SpeechResponseFormatFlac
	default:
		return outputFile + ".mp3", openai.SpeechResponseFormatMp3
	}
}

// writeAudioFile writes audio bytes to disk, creating the directory if
// needed.
func writeAudioFile(outputFile string, data []byte) error {
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
