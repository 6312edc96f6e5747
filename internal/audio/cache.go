package audio

import (
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache stores synthesized audio in a sqlite database, keyed by a hash
// of the spoken text and the synthesis settings. Repeated spellings of
// the same phrase then cost no API calls.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the cache database at the given path.
func OpenCache(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS audio_cache (
		key        text PRIMARY KEY,
		format     text NOT NULL,
		data       blob NOT NULL,
		created_at integer NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached audio for a key, or false if absent.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.QueryRow("SELECT data FROM audio_cache WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return data, true, nil
}

// Put stores audio bytes under a key, replacing any previous entry.
func (c *Cache) Put(key, format string, data []byte) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO audio_cache (key, format, data, created_at) VALUES (?, ?, ?, ?)",
		key, format, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Stats returns the number of cached entries and their total size in bytes.
func (c *Cache) Stats() (entryCount int, totalSize int64, err error) {
	err = c.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(LENGTH(data)), 0) FROM audio_cache").
		Scan(&entryCount, &totalSize)
	if err != nil {
		return 0, 0, fmt.Errorf("cache stats failed: %w", err)
	}
	return entryCount, totalSize, nil
}

// Clear removes all cached entries.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM audio_cache")
	return err
}

// CacheKey derives the cache key for one synthesis request.
func CacheKey(text, model, voice string, speed float64, instruction string) string {
	h := md5.New()
	h.Write([]byte(text))
	h.Write([]byte(model))
	h.Write([]byte(voice))
	h.Write([]byte(fmt.Sprintf("%.2f", speed)))
	if instruction != "" {
		h.Write([]byte(instruction))
	}
	return hex.EncodeToString(h.Sum(nil))
}
