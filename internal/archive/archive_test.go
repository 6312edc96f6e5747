package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveTranscripts(t *testing.T) {
	tmpDir := t.TempDir()

	// Create transcripts directory with some test files
	transcriptsDir := filepath.Join(tmpDir, "transcripts")
	if err := os.MkdirAll(transcriptsDir, 0755); err != nil {
		t.Fatalf("Failed to create transcripts directory: %v", err)
	}

	entryDir := filepath.Join(transcriptsDir, "greeting")
	if err := os.MkdirAll(entryDir, 0755); err != nil {
		t.Fatalf("Failed to create entry directory: %v", err)
	}
	spellingFile := filepath.Join(entryDir, "spelling.txt")
	if err := os.WriteFile(spellingFile, []byte("H: Hotel\nSTOP\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Archive the transcripts directory
	if err := ArchiveTranscripts(transcriptsDir); err != nil {
		t.Fatalf("ArchiveTranscripts failed: %v", err)
	}

	// Check that transcripts directory no longer exists
	if _, err := os.Stat(transcriptsDir); !os.IsNotExist(err) {
		t.Error("Transcripts directory still exists after archiving")
	}

	// Check that archive directory was created
	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry in archive directory, got %d", len(entries))
	}

	archivedName := entries[0].Name()
	if !strings.HasPrefix(archivedName, "transcripts-") {
		t.Errorf("Archived directory name doesn't start with 'transcripts-': %s", archivedName)
	}

	// Check that archived files exist
	archivedFile := filepath.Join(archiveDir, archivedName, "greeting", "spelling.txt")
	if _, err := os.Stat(archivedFile); os.IsNotExist(err) {
		t.Error("Spelling file not found in archive")
	}
}

func TestArchiveTranscripts_NonExistentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	nonExistentDir := filepath.Join(tmpDir, "nonexistent")

	err := ArchiveTranscripts(nonExistentDir)
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveTranscripts_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()

	// Archive twice to ensure unique names
	for i := 0; i < 2; i++ {
		transcriptsDir := filepath.Join(tmpDir, "transcripts")
		if err := os.MkdirAll(transcriptsDir, 0755); err != nil {
			t.Fatalf("Failed to create transcripts directory: %v", err)
		}

		if err := ArchiveTranscripts(transcriptsDir); err != nil {
			t.Fatalf("ArchiveTranscripts run %d failed: %v", i, err)
		}
	}

	archiveDir := filepath.Join(tmpDir, "archive")
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 archives, got %d", len(entries))
	}
}
