package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ClearDir removes the directory and all contents, then recreates it so the
// location stays a valid empty cache.
func ClearDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("empty dir")
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// PurgeByAge deletes HTTP entries whose SavedAt is older than maxAge, along
// with their bodies, and LLM responses older than maxAge by mtime. Returns
// the number of entries removed.
func PurgeByAge(dir string, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	removed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		switch {
		case strings.HasSuffix(d.Name(), ".meta.json"):
			data, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			var e HTTPEntry
			if err := json.Unmarshal(data, &e); err != nil {
				return nil
			}
			if now.Sub(e.SavedAt) <= maxAge {
				return nil
			}
			_ = os.Remove(path)
			_ = os.Remove(strings.TrimSuffix(path, ".meta.json") + ".body")
			removed++
		case strings.HasSuffix(d.Name(), ".llm.json"):
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if now.Sub(info.ModTime()) <= maxAge {
				return nil
			}
			_ = os.Remove(path)
			removed++
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return removed, nil
	}
	return removed, err
}
