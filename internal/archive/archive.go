package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveTranscripts moves the transcripts directory to a
// timestamped archive next to it, leaving room for a fresh set.
func ArchiveTranscripts(transcriptsDir string) error {
	if _, err := os.Stat(transcriptsDir); os.IsNotExist(err) {
		return fmt.Errorf("transcripts directory does not exist: %s", transcriptsDir)
	}

	parentDir := filepath.Dir(transcriptsDir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("transcripts-%s", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("transcripts-%s", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	if err := os.Rename(transcriptsDir, archivePath); err != nil {
		return fmt.Errorf("failed to archive transcripts directory: %w", err)
	}

	fmt.Printf("Transcripts archived to: %s\n", archivePath)
	return nil
}
