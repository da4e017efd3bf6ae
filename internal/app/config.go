package app

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for a scrape run.
type Config struct {
	// Target
	MenuURL    string
	Restaurant string
	Location   string

	// Output
	OutDir    string
	EnablePDF bool

	// Fetch
	UserAgent      string
	AcceptLanguage string
	Timeout        time.Duration
	MaxAttempts    int
	RespectRobots  bool

	// Cache
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool
	BypassCache bool

	// LLM assist (optional)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Behavior
	DryRun  bool
	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.MenuURL) == "" {
		return errors.New("config: menu URL is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("config: output dir is required")
	}
	if cfg.MaxAttempts < 0 || cfg.Timeout < 0 || cfg.CacheMaxAge < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
