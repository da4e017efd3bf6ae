package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file YAML configuration schema. Nested sections
// map naturally onto flags and environment variables.
type FileConfig struct {
	Menu struct {
		URL        string `yaml:"url"`
		Restaurant string `yaml:"restaurant"`
		Location   string `yaml:"location"`
	} `yaml:"menu"`

	Output struct {
		Dir string `yaml:"dir"`
		PDF bool   `yaml:"pdf"`
	} `yaml:"output"`

	Fetch struct {
		UserAgent      string        `yaml:"userAgent"`
		AcceptLanguage string        `yaml:"acceptLanguage"`
		Timeout        time.Duration `yaml:"timeout"`
		MaxAttempts    int           `yaml:"maxAttempts"`
		IgnoreRobots   bool          `yaml:"ignoreRobots"`
	} `yaml:"fetch"`

	Cache struct {
		Dir    string        `yaml:"dir"`
		MaxAge time.Duration `yaml:"maxAge"`
		Clear  bool          `yaml:"clear"`
		Bypass bool          `yaml:"bypass"`
	} `yaml:"cache"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	DryRun  bool `yaml:"dryRun"`
	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// zero value. Flags parse first, so explicit flags always win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.MenuURL == "" && fc.Menu.URL != "" {
		cfg.MenuURL = fc.Menu.URL
	}
	if cfg.Restaurant == "" && fc.Menu.Restaurant != "" {
		cfg.Restaurant = fc.Menu.Restaurant
	}
	if cfg.Location == "" && fc.Menu.Location != "" {
		cfg.Location = fc.Menu.Location
	}

	if cfg.OutDir == "" && fc.Output.Dir != "" {
		cfg.OutDir = fc.Output.Dir
	}
	if !cfg.EnablePDF && fc.Output.PDF {
		cfg.EnablePDF = true
	}

	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.AcceptLanguage == "" && fc.Fetch.AcceptLanguage != "" {
		cfg.AcceptLanguage = fc.Fetch.AcceptLanguage
	}
	if cfg.Timeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.Timeout = fc.Fetch.Timeout
	}
	if cfg.MaxAttempts == 0 && fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}
	if cfg.RespectRobots && fc.Fetch.IgnoreRobots {
		cfg.RespectRobots = false
	}

	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.BypassCache && fc.Cache.Bypass {
		cfg.BypassCache = true
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
