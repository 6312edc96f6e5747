package audio

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockProvider implements Provider interface for testing
type mockProvider struct {
	name          string
	generateErr   error
	availableErr  error
	generateCalls int
}

func (m *mockProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.generateCalls++
	return m.generateErr
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) IsAvailable() error {
	return m.availableErr
}

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got '%s'", config.Provider)
	}

	if config.OutputFormat != "mp3" {
		t.Errorf("Expected output format 'mp3', got '%s'", config.OutputFormat)
	}

	if config.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Expected OpenAI model 'gpt-4o-mini-tts', got '%s'", config.OpenAIModel)
	}

	if config.OpenAIVoice != "alloy" {
		t.Errorf("Expected OpenAI voice 'alloy', got '%s'", config.OpenAIVoice)
	}

	if config.OpenAISpeed != 1.0 {
		t.Errorf("Expected OpenAI speed 1.0, got %f", config.OpenAISpeed)
	}

	if config.ESpeakVoice != "en" {
		t.Errorf("Expected espeak voice 'en', got '%s'", config.ESpeakVoice)
	}
}

func TestNewProviderErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		errMsg string
	}{
		{
			name:   "openai provider without key",
			config: &Config{Provider: "openai"},
			errMsg: "OpenAI API key is required",
		},
		{
			name:   "unknown provider",
			config: &Config{Provider: "unknown"},
			errMsg: "unknown audio provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Error = %v, expected to contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestProviderWithFallback(t *testing.T) {
	primary := &mockProvider{name: "primary", generateErr: errors.New("primary down")}
	fallback := &mockProvider{name: "fallback"}

	p := NewProviderWithFallback(primary, fallback)

	err := p.GenerateAudio(context.Background(), "Alpha", "out.mp3")
	if err != nil {
		t.Errorf("Expected fallback to succeed, got %v", err)
	}
	if primary.generateCalls != 1 {
		t.Errorf("Primary called %d times, want 1", primary.generateCalls)
	}
	if fallback.generateCalls != 1 {
		t.Errorf("Fallback called %d times, want 1", fallback.generateCalls)
	}
}

func TestProviderWithFallbackPrimarySucceeds(t *testing.T) {
	primary := &mockProvider{name: "primary"}
	fallback := &mockProvider{name: "fallback"}

	p := NewProviderWithFallback(primary, fallback)

	if err := p.GenerateAudio(context.Background(), "Alpha", "out.mp3"); err != nil {
		t.Errorf("Expected success, got %v", err)
	}
	if fallback.generateCalls != 0 {
		t.Errorf("Fallback called %d times, want 0", fallback.generateCalls)
	}
}

func TestProviderWithFallbackAvailability(t *testing.T) {
	primary := &mockProvider{name: "primary", availableErr: errors.New("no key")}
	fallback := &mockProvider{name: "fallback", availableErr: errors.New("not installed")}

	p := NewProviderWithFallback(primary, fallback)

	if err := p.IsAvailable(); err == nil {
		t.Error("Expected error when both providers are unavailable")
	}

	fallback.availableErr = nil
	if err := p.IsAvailable(); err != nil {
		t.Errorf("Expected availability via fallback, got %v", err)
	}
}
