package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunchboard/menuscrape/internal/app"
)

const (
	defaultMenuURL    = "https://clients.eurest.ch/kaserne/de/Timeout"
	defaultRestaurant = "Eurest Kaserne Timeout"
	defaultLocation   = "Papiermühlestrasse 15, 3014 Bern"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local development; flags and real env still win.
	_ = godotenv.Load()

	var (
		configPath   string
		menuURL      string
		restaurant   string
		location     string
		outDir       string
		enablePDF    bool
		userAgent    string
		acceptLang   string
		timeout      time.Duration
		maxAttempts  int
		ignoreRobots bool
		cacheDir     string
		cacheMaxAge  time.Duration
		cacheClear   bool
		cacheBypass  bool
		llmBaseURL   string
		llmModel     string
		llmKey       string
		dryRun       bool
		verbose      bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("MENUSCRAPE_CONFIG"), "Path to YAML config file (optional)")
	flag.StringVar(&menuURL, "url", defaultMenuURL, "Menu page URL to scrape")
	flag.StringVar(&restaurant, "restaurant", defaultRestaurant, "Restaurant display name")
	flag.StringVar(&location, "location", defaultLocation, "Restaurant address line")
	flag.StringVar(&outDir, "out", "./public", "Directory for menu.json and the generated site")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also write a printable menu.pdf")
	flag.StringVar(&userAgent, "fetch.ua", "", "Custom User-Agent for page requests")
	flag.StringVar(&acceptLang, "fetch.lang", "", "Accept-Language header for page requests")
	flag.DurationVar(&timeout, "fetch.timeout", 0, "Per-request timeout (default 15s)")
	flag.IntVar(&maxAttempts, "fetch.attempts", 0, "Fetch attempts before giving up (default 3)")
	flag.BoolVar(&ignoreRobots, "fetch.ignoreRobots", false, "Skip the robots.txt check")
	flag.StringVar(&cacheDir, "cache.dir", ".menuscrape-cache", "Cache directory path; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&cacheBypass, "cache.bypass", false, "Fetch fresh, ignoring cached validators")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the extraction assist")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name; empty disables the assist")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.BoolVar(&dryRun, "dry-run", false, "Print the summary JSON to stdout without writing files")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		MenuURL:        menuURL,
		Restaurant:     restaurant,
		Location:       location,
		OutDir:         outDir,
		EnablePDF:      enablePDF,
		UserAgent:      userAgent,
		AcceptLanguage: acceptLang,
		Timeout:        timeout,
		MaxAttempts:    maxAttempts,
		RespectRobots:  !ignoreRobots,
		CacheDir:       cacheDir,
		CacheMaxAge:    cacheMaxAge,
		CacheClear:     cacheClear,
		BypassCache:    cacheBypass,
		LLMBaseURL:     llmBaseURL,
		LLMModel:       llmModel,
		LLMAPIKey:      llmKey,
		DryRun:         dryRun,
		Verbose:        verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		// Flags were parsed above, so explicit flags take precedence. The
		// URL/name defaults count as unset when the file provides values.
		if cfg.MenuURL == defaultMenuURL && fc.Menu.URL != "" {
			cfg.MenuURL = ""
		}
		if cfg.Restaurant == defaultRestaurant && fc.Menu.Restaurant != "" {
			cfg.Restaurant = ""
		}
		if cfg.Location == defaultLocation && fc.Menu.Location != "" {
			cfg.Location = ""
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	summary, err := a.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Int("items", summary.TotalItems).
		Str("restaurant", summary.Restaurant).
		Msg("scrape complete")
	return nil
}
