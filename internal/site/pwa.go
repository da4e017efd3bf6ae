package site

import (
	"encoding/json"
	"fmt"
)

var iconSizes = []int{16, 32, 120, 152, 180, 192, 512}

type manifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Lang            string         `json:"lang"`
	Icons           []manifestIcon `json:"icons"`
}

func renderManifest(name string) ([]byte, error) {
	short := name
	if len(short) > 12 {
		short = "Lunch"
	}
	m := webManifest{
		Name:            name + " – Mittagsmenü",
		ShortName:       short,
		Description:     "Daily lunch menu for " + name,
		StartURL:        "./index.html",
		Display:         "standalone",
		BackgroundColor: "#667eea",
		ThemeColor:      "#2563eb",
		Lang:            "de",
	}
	for _, size := range iconSizes {
		m.Icons = append(m.Icons, manifestIcon{
			Src:     fmt.Sprintf("./icon-%d.png", size),
			Sizes:   fmt.Sprintf("%dx%d", size, size),
			Type:    "image/png",
			Purpose: "any maskable",
		})
	}
	return json.MarshalIndent(m, "", "  ")
}

// serviceWorker is a cache-first worker over the static assets. The JSON is
// fetched network-first so a stale menu never shadows a fresh scrape.
const serviceWorker = `const CACHE = 'menu-v1';
const ASSETS = ['./index.html', './manifest.json', './icon-192.png', './icon-512.png'];

self.addEventListener('install', (event) => {
  event.waitUntil(caches.open(CACHE).then((c) => c.addAll(ASSETS)));
  self.skipWaiting();
});

self.addEventListener('activate', (event) => {
  event.waitUntil(
    caches.keys().then((keys) =>
      Promise.all(keys.filter((k) => k !== CACHE).map((k) => caches.delete(k)))
    )
  );
  self.clients.claim();
});

self.addEventListener('fetch', (event) => {
  const url = new URL(event.request.url);
  if (url.pathname.endsWith('/menu.json')) {
    event.respondWith(
      fetch(event.request)
        .then((resp) => {
          const copy = resp.clone();
          caches.open(CACHE).then((c) => c.put(event.request, copy));
          return resp;
        })
        .catch(() => caches.match(event.request))
    );
    return;
  }
  event.respondWith(
    caches.match(event.request).then((hit) => hit || fetch(event.request))
  );
});
`
