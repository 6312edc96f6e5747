package batch

import (
	"fmt"
	"os"
	"strings"
)

// PhraseEntry represents one phrase to spell, with an optional name
// used for the saved transcript files.
type PhraseEntry struct {
	Name   string
	Phrase string
}

// nameSeparator splits a name from its phrase. The spaces are
// required so phrases containing a bare '=' are left intact.
const nameSeparator = " = "

// ReadBatchFile reads phrases from a file and returns PhraseEntry slice
// Supports formats:
// - Phrase only: "correct horse battery staple"
// - With name: "wifi-password = hunter2!" (name picks the output files)
// Lines starting with '#' and blank lines are skipped.
func ReadBatchFile(filename string) ([]PhraseEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []PhraseEntry

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.Contains(line, nameSeparator) {
			parts := strings.SplitN(line, nameSeparator, 2)
			name := strings.TrimSpace(parts[0])
			phrase := strings.TrimSpace(parts[1])

			if phrase == "" {
				// Ignore lines with an empty phrase part
				continue
			}
			entries = append(entries, PhraseEntry{Name: name, Phrase: phrase})
			continue
		}

		entries = append(entries, PhraseEntry{Phrase: trimmed})
	}

	return entries, nil
}
