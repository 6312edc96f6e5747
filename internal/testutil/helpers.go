package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestEntryDirectory creates a transcript entry directory with
// standard files, as the processor lays them out
func CreateTestEntryDirectory(t *testing.T, baseDir, phrase string) string {
	t.Helper()

	entryDir := filepath.Join(baseDir, phrase)
	if err := os.MkdirAll(entryDir, 0755); err != nil {
		t.Fatalf("Failed to create entry directory: %v", err)
	}

	files := map[string]string{
		"phrase.txt":   phrase,
		"spelling.txt": "S: Sierra\nSTOP\n",
	}

	for filename, content := range files {
		CreateTestFile(t, filepath.Join(entryDir, filename), []byte(content))
	}

	// Create mock audio file
	audioPath := filepath.Join(entryDir, "spelling.mp3")
	CreateTestFile(t, audioPath, []byte{0xFF, 0xFB, 0x90, 0x00})

	return entryDir
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}
