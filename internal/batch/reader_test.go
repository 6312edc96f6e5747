package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "phrases.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	return path
}

func TestReadBatchFile(t *testing.T) {
	content := `# phrases to spell out
hello world

wifi-password = hunter2!
a=b
`
	entries, err := ReadBatchFile(writeBatchFile(t, content))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	want := []PhraseEntry{
		{Phrase: "hello world"},
		{Name: "wifi-password", Phrase: "hunter2!"},
		{Phrase: "a=b"},
	}

	if len(entries) != len(want) {
		t.Fatalf("Got %d entries, want %d: %+v", len(entries), len(want), entries)
	}

	for i, w := range want {
		if entries[i] != w {
			t.Errorf("Entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestReadBatchFileBareEqualsKeptInPhrase(t *testing.T) {
	// A '=' without surrounding spaces is part of the phrase, not a
	// name separator.
	entries, err := ReadBatchFile(writeBatchFile(t, "x=1\n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Phrase != "x=1" || entries[0].Name != "" {
		t.Errorf("Entries = %+v, want single unnamed phrase \"x=1\"", entries)
	}
}

func TestReadBatchFileEmptyPhraseSkipped(t *testing.T) {
	entries, err := ReadBatchFile(writeBatchFile(t, "name = \n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Got %d entries, want 0", len(entries))
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := ReadBatchFile("/nonexistent/phrases.txt"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadBatchFileWindowsLineEndings(t *testing.T) {
	entries, err := ReadBatchFile(writeBatchFile(t, "one\r\ntwo\r\n"))
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Phrase != "one" || entries[1].Phrase != "two" {
		t.Errorf("Entries = %+v, want [one two]", entries)
	}
}
