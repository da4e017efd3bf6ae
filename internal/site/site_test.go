package site

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lunchboard/menuscrape/internal/menu"
)

func ptr[T any](v T) *T { return &v }

func testSummary() menu.Summary {
	return menu.NewSummary(
		"Restaurant Kasernenareal",
		"Zürich",
		"https://example.test/menu",
		time.Date(2026, 8, 25, 11, 30, 0, 0, time.UTC),
		ptr("25.08.2026"),
		[]menu.Item{
			{Name: "Schlemmerfilet Italiano", Description: "Gemüsereis und Romanesco.", Price: ptr(14.80), Category: ptr(menu.CategoryMenu)},
			{Name: "Gemüsecurry", Description: "Mit Basmatireis.", Price: ptr(13.50), Category: ptr(menu.CategoryVegi)},
			{Name: "Hausburger", Price: ptr(18.50), Category: ptr(menu.CategoryHit)},
			{Name: "Tagessuppe", Description: "Kürbis mit Ingwer."},
		},
	)
}

func TestGenerate_WritesAllAssets(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{OutDir: dir}
	if err := g.Generate(testSummary()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{"index.html", "manifest.json", "sw.js",
		"icon-16.png", "icon-32.png", "icon-120.png", "icon-152.png",
		"icon-180.png", "icon-192.png", "icon-512.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRenderPage_Structure(t *testing.T) {
	page, err := renderPage(testSummary())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := doc.Find("header h1").Text(); !strings.Contains(got, "Restaurant Kasernenareal") {
		t.Errorf("h1 = %q", got)
	}
	if got := doc.Find(".meta-info .updated").Text(); got != "Updated: 25.08.2026" {
		t.Errorf("updated = %q", got)
	}
	if got := doc.Find(".meta-info .count").Text(); got != "4 menu items" {
		t.Errorf("count = %q", got)
	}
	if got := doc.Find(".meta-info .prices").Text(); !strings.Contains(got, "CHF 13.50 - CHF 18.50") {
		t.Errorf("price line = %q", got)
	}

	titles := doc.Find(".category-title").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	if len(titles) != 4 {
		t.Fatalf("sections = %v", titles)
	}
	// Fixed display order, uncategorized items under OTHER at the end.
	for i, want := range []string{"MENU", "VEGI", "HIT", "OTHER"} {
		if !strings.Contains(titles[i], want) {
			t.Errorf("section %d = %q, want %s", i, titles[i], want)
		}
	}

	if n := doc.Find(".menu-item").Length(); n != 4 {
		t.Errorf("menu items rendered = %d", n)
	}
	if got := doc.Find(".item-price").First().Text(); got != "CHF 14.80" {
		t.Errorf("first price = %q", got)
	}
	if doc.Find(".no-items").Length() != 0 {
		t.Error("no-items block rendered despite items present")
	}
	if href, _ := doc.Find(`a[download]`).Attr("href"); href != "./menu.json" {
		t.Errorf("download href = %q", href)
	}
}

func TestRenderPage_NoItems(t *testing.T) {
	s := menu.NewSummary("R", "L", "https://example.test", time.Now().UTC(), nil, nil)
	page, err := renderPage(s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Find(".no-items").Length() != 1 {
		t.Error("no-items block missing")
	}
	if doc.Find(".category-section").Length() != 0 {
		t.Error("unexpected category sections")
	}
}

func TestRenderPage_EscapesMarkup(t *testing.T) {
	s := testSummary()
	s.MenuItems[0].Name = `<script>alert("x")</script>`
	page, err := renderPage(s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if bytes.Contains(page, []byte(`<script>alert`)) {
		t.Fatal("item name not escaped")
	}
}

func TestRenderManifest(t *testing.T) {
	data, err := renderManifest("Restaurant Kasernenareal")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var m webManifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.ThemeColor != "#2563eb" || m.Display != "standalone" {
		t.Errorf("manifest = %+v", m)
	}
	if len(m.Icons) != len(iconSizes) {
		t.Errorf("icons = %d, want %d", len(m.Icons), len(iconSizes))
	}
	if m.ShortName != "Lunch" {
		t.Errorf("long restaurant name not shortened: %q", m.ShortName)
	}
}

func TestRenderIcon_SizesDecode(t *testing.T) {
	for _, size := range []int{16, 512} {
		data, err := renderIcon(size)
		if err != nil {
			t.Fatalf("render %d: %v", size, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %d: %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("icon %d bounds = %v", size, b)
		}
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.pdf")
	if err := WritePDF(testSummary(), path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a PDF: %q", data[:8])
	}
}
