// Package metrics exposes Prometheus collectors for the scrape pipeline.
// Registered on the default registry; menuserve serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ScrapesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menuscrape_scrapes_total",
		Help: "Completed scrape runs, successful or not.",
	})

	ScrapeFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "menuscrape_scrape_failures_total",
		Help: "Scrape runs that ended in an error.",
	})

	ItemsExtracted = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "menuscrape_items_extracted",
		Help: "Menu items extracted by the most recent scrape.",
	})

	FetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "menuscrape_fetch_duration_seconds",
		Help:    "Wall time of the page fetch, including retries.",
		Buckets: prometheus.DefBuckets,
	})

	LastScrapeTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "menuscrape_last_scrape_unixtime",
		Help: "Unix timestamp of the last successful scrape.",
	})
)

func init() {
	prometheus.MustRegister(
		ScrapesTotal,
		ScrapeFailuresTotal,
		ItemsExtracted,
		FetchDuration,
		LastScrapeTime,
	)
}
