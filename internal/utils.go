package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateEntryID creates a unique ID for a saved transcript entry.
// Format: epochMillis_md5(phrase)[:8]
func GenerateEntryID(phrase string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(phrase))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
