package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/lunchboard/menuscrape/internal/menu"
)

// Generator writes the static PWA for a menu summary into OutDir:
// index.html, manifest.json, sw.js and the icon set. The summary JSON itself
// is written by the caller; the page links to it as ./menu.json.
type Generator struct {
	OutDir string
	// AppName overrides the PWA name; defaults to the summary's restaurant.
	AppName string
}

// Generate renders all site assets. Files are written independently so a
// failing icon does not take down the page itself.
func (g *Generator) Generate(s menu.Summary) error {
	if g.OutDir == "" {
		return fmt.Errorf("output dir not configured")
	}
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	page, err := renderPage(s)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := g.write("index.html", page); err != nil {
		return err
	}

	manifest, err := renderManifest(g.appName(s))
	if err != nil {
		return fmt.Errorf("render manifest: %w", err)
	}
	if err := g.write("manifest.json", manifest); err != nil {
		return err
	}
	if err := g.write("sw.js", []byte(serviceWorker)); err != nil {
		return err
	}

	for _, size := range iconSizes {
		name := fmt.Sprintf("icon-%d.png", size)
		data, err := renderIcon(size)
		if err != nil {
			log.Warn().Err(err).Str("icon", name).Msg("icon generation failed")
			continue
		}
		if err := g.write(name, data); err != nil {
			return err
		}
	}

	log.Info().Str("dir", g.OutDir).Int("items", s.TotalItems).Msg("site generated")
	return nil
}

func (g *Generator) write(name string, data []byte) error {
	path := filepath.Join(g.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (g *Generator) appName(s menu.Summary) string {
	if g.AppName != "" {
		return g.AppName
	}
	return s.Restaurant
}
