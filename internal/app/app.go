package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/lunchboard/menuscrape/internal/cache"
	"github.com/lunchboard/menuscrape/internal/extract"
	"github.com/lunchboard/menuscrape/internal/fetch"
	"github.com/lunchboard/menuscrape/internal/llmextract"
	"github.com/lunchboard/menuscrape/internal/menu"
	"github.com/lunchboard/menuscrape/internal/metrics"
	"github.com/lunchboard/menuscrape/internal/site"
)

const (
	defaultUserAgent      = "menuscrape/1.0 (+https://github.com/lunchboard/menuscrape)"
	defaultAcceptLanguage = "de-CH,de;q=0.9,en;q=0.5"
	defaultTimeout        = 15 * time.Second
	defaultMaxAttempts    = 3
)

// App wires the scrape pipeline: fetch, extract, summarize, render.
type App struct {
	cfg     Config
	fetcher *fetch.Client
	llm     *llmextract.Extractor
	now     func() time.Time
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = defaultAcceptLanguage
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}

	a := &App{cfg: cfg, now: time.Now}

	var httpCache *cache.HTTPCache
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			if n, err := cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged expired cache entries")
			}
		}
		httpCache = &cache.HTTPCache{Dir: cfg.CacheDir}
	}

	a.fetcher = &fetch.Client{
		HTTPClient:     &http.Client{Timeout: cfg.Timeout},
		UserAgent:      cfg.UserAgent,
		AcceptLanguage: cfg.AcceptLanguage,
		MaxAttempts:    cfg.MaxAttempts,
		Timeout:        cfg.Timeout,
		Cache:          httpCache,
		BypassCache:    cfg.BypassCache,
		RespectRobots:  cfg.RespectRobots,
	}

	if cfg.LLMModel != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		a.llm = &llmextract.Extractor{
			Client: openai.NewClientWithConfig(transportCfg),
			Model:  cfg.LLMModel,
		}
		if cfg.CacheDir != "" {
			a.llm.Cache = &cache.LLMCache{Dir: cfg.CacheDir}
		}
	}

	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run executes one scrape and writes all artifacts into the output dir.
// The returned summary is what was persisted as menu.json.
func (a *App) Run(ctx context.Context) (menu.Summary, error) {
	metrics.ScrapesTotal.Inc()
	summary, err := a.scrape(ctx)
	if err != nil {
		metrics.ScrapeFailuresTotal.Inc()
		return menu.Summary{}, err
	}
	metrics.ItemsExtracted.Set(float64(summary.TotalItems))
	metrics.LastScrapeTime.Set(float64(summary.ScrapedAt.Unix()))
	return summary, nil
}

func (a *App) scrape(ctx context.Context) (menu.Summary, error) {
	started := time.Now()
	markup, err := a.fetcher.Page(ctx, a.cfg.MenuURL)
	metrics.FetchDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return menu.Summary{}, fmt.Errorf("fetch menu page: %w", err)
	}

	items := extract.Items(markup)
	log.Info().Int("items", len(items)).Msg("heuristic extraction done")

	if len(items) == 0 && a.llm != nil {
		candidates, err := a.llm.Items(ctx, extract.PageText(markup))
		if err != nil {
			log.Warn().Err(err).Msg("llm extraction assist failed")
		} else {
			items = extract.Normalize(candidates)
			log.Info().Int("items", len(items)).Msg("llm extraction assist done")
		}
	}
	if len(items) == 0 {
		log.Warn().Str("url", a.cfg.MenuURL).Msg("no menu items extracted")
	}

	summary := menu.NewSummary(
		a.cfg.Restaurant,
		a.cfg.Location,
		a.cfg.MenuURL,
		a.now().UTC(),
		extract.DisplayDate(markup),
		items,
	)

	if a.cfg.DryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return menu.Summary{}, fmt.Errorf("encode summary: %w", err)
		}
		return summary, nil
	}

	if err := a.writeArtifacts(summary); err != nil {
		return menu.Summary{}, err
	}
	return summary, nil
}

func (a *App) writeArtifacts(summary menu.Summary) error {
	if err := os.MkdirAll(a.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	jsonPath := filepath.Join(a.cfg.OutDir, "menu.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info().Str("out", jsonPath).Int("items", summary.TotalItems).Msg("wrote menu summary")

	gen := &site.Generator{OutDir: a.cfg.OutDir}
	if err := gen.Generate(summary); err != nil {
		return fmt.Errorf("generate site: %w", err)
	}

	if a.cfg.EnablePDF {
		pdfPath := filepath.Join(a.cfg.OutDir, "menu.pdf")
		if err := site.WritePDF(summary, pdfPath); err != nil {
			return fmt.Errorf("generate pdf: %w", err)
		}
		log.Info().Str("out", pdfPath).Msg("wrote menu pdf")
	}
	return nil
}
