package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

// LLMCache stores model responses keyed by model name and prompt digest, so
// re-running the pipeline against an unchanged page never re-asks the model.
type LLMCache struct {
	Dir string
}

// LLMKey builds a stable cache key from model and prompt.
func LLMKey(model, prompt string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + prompt))
	return hex.EncodeToString(h[:])
}

func (c *LLMCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *LLMCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".llm.json")
}

// Get returns cached response bytes when present.
func (c *LLMCache) Get(_ context.Context, key string) ([]byte, bool) {
	if err := c.ensureDir(); err != nil {
		return nil, false
	}
	b, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

// Save writes response bytes for key.
func (c *LLMCache) Save(_ context.Context, key string, data []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), data, 0o644)
}
