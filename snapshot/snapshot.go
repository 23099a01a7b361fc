// Package snapshot autosaves the full entry collection to an on-disk
// JSON document on a fixed interval. It is a backup surface only: the
// core packages never read or write it, and the database stays the
// source of truth.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"timesheet/models"
)

// Document is the serialized entry collection.
type Document struct {
	SavedAt time.Time               `json:"saved_at"`
	Entries []models.TimesheetEntry `json:"entries"`
}

// Path returns the snapshot file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, "entries.json")
}

// Load reads the snapshot. A missing file yields an empty document; a
// corrupt one is backed up and reported.
func Load(dir string) (Document, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Document{Entries: []models.TimesheetEntry{}}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("snapshot error reading %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return Document{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return doc, nil
}

// Save atomically writes the snapshot: temp file first, then rename.
func Save(dir string, doc Document) error {
	path := Path(dir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("snapshot error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("snapshot error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("snapshot error renaming temp file: %w", err)
	}
	return nil
}

// Run flushes the entries returned by fetch every interval until ctx is
// cancelled, with a final flush on the way out. Fetch and save failures
// are logged, not fatal; the next tick retries.
func Run(ctx context.Context, dir string, interval time.Duration, fetch func() ([]models.TimesheetEntry, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			flush(dir, fetch)
			return
		case <-ticker.C:
			flush(dir, fetch)
		}
	}
}

func flush(dir string, fetch func() ([]models.TimesheetEntry, error)) {
	entries, err := fetch()
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	if err := Save(dir, Document{SavedAt: time.Now().UTC(), Entries: entries}); err != nil {
		log.Printf("snapshot: %v", err)
	}
}
