// Package serve hosts the generated site and keeps it fresh: static files,
// an on-demand refresh endpoint and Prometheus metrics.
package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/lunchboard/menuscrape/internal/menu"
	// Registers the scrape collectors on the default registry for /metrics.
	_ "github.com/lunchboard/menuscrape/internal/metrics"
)

// RefreshFunc runs one scrape and returns the persisted summary.
type RefreshFunc func(ctx context.Context) (menu.Summary, error)

// Server serves the generated site directory and refreshes it on demand and
// on a weekday schedule.
type Server struct {
	Addr    string
	Dir     string
	Refresh RefreshFunc
	// Limiter throttles refresh triggers from all sources. Nil means a
	// default of one refresh per minute.
	Limiter *rate.Limiter
	// Interval between scheduled refreshes. Zero disables the scheduler.
	Interval time.Duration

	mu   sync.Mutex
	last *menu.Summary
}

func (s *Server) limiter() *rate.Limiter {
	if s.Limiter == nil {
		s.Limiter = rate.NewLimiter(rate.Every(time.Minute), 1)
	}
	return s.Limiter
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.Dir)))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/refresh", s.handleRefresh)
	mux.HandleFunc("/api/menu", s.handleAPIMenu)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.limiter().Allow() {
		http.Error(w, "refresh rate limit exceeded", http.StatusTooManyRequests)
		return
	}
	summary, err := s.doRefresh(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("refresh failed")
		http.Error(w, "refresh failed", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"total_items": summary.TotalItems,
		"scraped_at":  summary.ScrapedAt,
	})
}

func (s *Server) handleAPIMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		http.Error(w, "no scrape completed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(last)
}

func (s *Server) doRefresh(ctx context.Context) (menu.Summary, error) {
	if s.Refresh == nil {
		return menu.Summary{}, errors.New("no refresh function configured")
	}
	summary, err := s.Refresh(ctx)
	if err != nil {
		return menu.Summary{}, err
	}
	s.mu.Lock()
	s.last = &summary
	s.mu.Unlock()
	return summary, nil
}

// Run serves until ctx is canceled, refreshing once at startup and then on
// the configured interval during weekdays.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.doRefresh(ctx); err != nil {
		// The static dir may still hold a previous scrape, so startup
		// continues and the scheduler retries.
		log.Warn().Err(err).Msg("initial refresh failed")
	}

	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Addr).Str("dir", s.Dir).Msg("serving menu site")
		errCh <- srv.ListenAndServe()
	}()

	if s.Interval > 0 {
		go s.schedule(ctx)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// schedule triggers refreshes on the interval, skipping weekends since the
// restaurant only publishes a weekday menu.
func (s *Server) schedule(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			if !s.limiter().Allow() {
				continue
			}
			if _, err := s.doRefresh(ctx); err != nil {
				log.Warn().Err(err).Msg("scheduled refresh failed")
			}
		}
	}
}
