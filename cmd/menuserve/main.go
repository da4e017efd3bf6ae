package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/lunchboard/menuscrape/internal/app"
	"github.com/lunchboard/menuscrape/internal/menu"
	"github.com/lunchboard/menuscrape/internal/serve"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	_ = godotenv.Load()

	var (
		addr        string
		interval    time.Duration
		minInterval time.Duration
		menuURL     string
		restaurant  string
		location    string
		outDir      string
		enablePDF   bool
		cacheDir    string
		cacheMaxAge time.Duration
		llmBaseURL  string
		llmModel    string
		llmKey      string
		verbose     bool
	)

	flag.StringVar(&addr, "addr", ":8080", "Listen address")
	flag.DurationVar(&interval, "refresh.every", time.Hour, "Scheduled refresh interval on weekdays; 0 disables")
	flag.DurationVar(&minInterval, "refresh.min", time.Minute, "Minimum spacing between refreshes from any source")
	flag.StringVar(&menuURL, "url", "https://clients.eurest.ch/kaserne/de/Timeout", "Menu page URL to scrape")
	flag.StringVar(&restaurant, "restaurant", "Eurest Kaserne Timeout", "Restaurant display name")
	flag.StringVar(&location, "location", "Papiermühlestrasse 15, 3014 Bern", "Restaurant address line")
	flag.StringVar(&outDir, "out", "./public", "Directory for menu.json and the generated site")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also write a printable menu.pdf on each refresh")
	flag.StringVar(&cacheDir, "cache.dir", ".menuscrape-cache", "Cache directory path; empty disables caching")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 7*24*time.Hour, "Max age for cache entries before purge; 0 disables")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the extraction assist")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name; empty disables the assist")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		MenuURL:       menuURL,
		Restaurant:    restaurant,
		Location:      location,
		OutDir:        outDir,
		EnablePDF:     enablePDF,
		RespectRobots: true,
		CacheDir:      cacheDir,
		CacheMaxAge:   cacheMaxAge,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		Verbose:       verbose,
	}

	if err := run(cfg, addr, interval, minInterval); err != nil {
		log.Error().Err(err).Msg("serve failed")
		os.Exit(1)
	}
}

func run(cfg app.Config, addr string, interval, minInterval time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	srv := &serve.Server{
		Addr: addr,
		Dir:  cfg.OutDir,
		Refresh: func(ctx context.Context) (menu.Summary, error) {
			return a.Run(ctx)
		},
		Limiter:  rate.NewLimiter(rate.Every(minInterval), 1),
		Interval: interval,
	}
	return srv.Run(ctx)
}
