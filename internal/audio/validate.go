package audio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxDictationLength caps the text sent to a TTS provider. OpenAI's
// speech endpoint rejects inputs above 4096 characters.
const maxDictationLength = 4096

// ValidateDictationText validates text before it is sent to a
// text-to-speech provider.
func ValidateDictationText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if utf8.RuneCountInString(text) > maxDictationLength {
		return fmt.Errorf("text exceeds %d characters", maxDictationLength)
	}

	return nil
}
