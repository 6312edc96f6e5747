package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI speech models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister writing to out
func NewLister(apiKey string, out io.Writer) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    out,
	}
}

// ListSpeechModels prints the TTS-capable models available to the key
func (l *Lister) ListSpeechModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .phonetictext.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ttsModels := filterSpeechModels(models.Models)

	fmt.Fprintln(l.out, "Available OpenAI text-to-speech models:")
	if len(ttsModels) == 0 {
		fmt.Fprintln(l.out, "  No TTS models found")
		return nil
	}
	for _, model := range ttsModels {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	return nil
}

// filterSpeechModels selects and sorts the TTS-capable model IDs.
func filterSpeechModels(all []openai.Model) []string {
	var ids []string
	for _, model := range all {
		id := model.ID
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
