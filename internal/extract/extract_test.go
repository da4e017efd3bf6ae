package extract

import (
	"strings"
	"testing"

	"github.com/lunchboard/menuscrape/internal/menu"
)

func TestItems_FullScenario(t *testing.T) {
	markup := `<html><body>
		<h3>Schlemmerfilet Italiano</h3>
		<p>Gemüsereis, Romanesco.</p>
		<p>Menu</p>
		<p>CHF 14.80</p>
	</body></html>`

	items := Items(markup)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	it := items[0]
	if it.Name != "Schlemmerfilet Italiano" {
		t.Fatalf("name = %q", it.Name)
	}
	if it.Description != "Gemüsereis, Romanesco." {
		t.Fatalf("description = %q", it.Description)
	}
	if it.Price == nil || *it.Price != 14.80 {
		t.Fatalf("price = %v", it.Price)
	}
	if it.Category == nil || *it.Category != menu.CategoryMenu {
		t.Fatalf("category = %v", it.Category)
	}
}

func TestItems_DenylistedHeadingsCreateNoItem(t *testing.T) {
	for _, heading := range []string{
		"Öffnungszeiten",
		"Kontakt & Anfahrt",
		"Ihre Meinung zählt",
		"Jobs bei uns",
		"Compass Group Schweiz",
	} {
		t.Run(heading, func(t *testing.T) {
			markup := "<h3>" + heading + "</h3><p>Montag bis Freitag ab elf Uhr</p><p>CHF 14.80</p>"
			// The trailing real dish proves the pass itself works.
			markup += "<h3>Tagesgericht</h3><p>CHF 12.50</p>"
			items := Items(markup)
			if len(items) != 1 || items[0].Name != "Tagesgericht" {
				t.Fatalf("expected only the real dish, got %+v", items)
			}
		})
	}
}

func TestItems_TextBeforeFirstHeadingIsDiscarded(t *testing.T) {
	markup := `<p>Herzlich willkommen in unserem Restaurant am Waldrand</p>
		<h3>Wochenhit</h3><p>CHF 18.50</p>`
	items := Items(markup)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Description != "" {
		t.Fatalf("stray preamble leaked into description: %q", items[0].Description)
	}
}

func TestItems_FirstMatchWinsWithinItem(t *testing.T) {
	markup := `<h3>Wochenangebot Braten</h3>
		<p>CHF 12.50</p>
		<p>Treuepunkte im Wert von 33.30 sammeln</p>`
	items := Items(markup)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Price == nil || *items[0].Price != 12.50 {
		t.Fatalf("price = %v, want first match 12.50", items[0].Price)
	}
}

func TestItems_CommaDecimalSeparator(t *testing.T) {
	markup := `<h3>Älplermagronen</h3><p>CHF 14,80</p>`
	items := Items(markup)
	if len(items) != 1 || items[0].Price == nil || *items[0].Price != 14.80 {
		t.Fatalf("comma price not normalized: %+v", items)
	}
}

func TestItems_ImplausibleBareTokenRejected(t *testing.T) {
	markup := `<h3>Suppenbeilage klein</h3>
		<p>Feine Beilage zum Hauptgang</p>
		<p>Nur 3.50 heute</p>
		<h3>Bankettplatte gross</h3>
		<p>Reicht für die ganze Abteilung</p>
		<p>Ab 95.00 pro Platte</p>`
	items := Items(markup)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Price != nil {
			t.Fatalf("item %q: bare token outside [5,50] accepted as price %v", it.Name, *it.Price)
		}
	}
}

func TestItems_NewHeadingEndsAccumulation(t *testing.T) {
	markup := `<h3>Erstes Gericht</h3><p>Mit Reis und Gemüse</p>
		<h3>Zweites Gericht</h3><p>CHF 16.00</p>`
	items := Items(markup)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Price != nil {
		t.Fatalf("price of the second item leaked into the first: %v", *items[0].Price)
	}
	if items[1].Description != "" {
		t.Fatalf("description of the first item leaked into the second: %q", items[1].Description)
	}
}

func TestItems_RetentionFilter(t *testing.T) {
	markup := `<h3>Nur ein Name</h3>
		<h3>Gericht mit Preis</h3><p>CHF 11.00</p>`
	items := Items(markup)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Gericht mit Preis" {
		t.Fatalf("wrong survivor: %q", items[0].Name)
	}
}

func TestItems_NestedSpansSplitFragments(t *testing.T) {
	// The buffer resets on every text-level open tag, so the span content
	// is routed as its own fragment, matching the per-fragment contract.
	markup := `<h3>Tagesteller deluxe</h3><p>Hausgemachte Rösti<span>CHF 15.20</span></p>`
	items := Items(markup)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Price == nil || *items[0].Price != 15.20 {
		t.Fatalf("nested span price missed: %+v", items[0])
	}
}

func TestDisplayDate(t *testing.T) {
	markup := `<div>Menüplan vom 18.7.2025 bis 22.7.2025</div>`
	d := DisplayDate(markup)
	if d == nil || *d != "18.7.2025" {
		t.Fatalf("display date = %v", d)
	}
	if DisplayDate("<div>kein Datum hier</div>") != nil {
		t.Fatalf("expected nil for dateless markup")
	}
}

func TestPageText_SkipsScriptAndNav(t *testing.T) {
	markup := `<html><body>
		<nav>Navigation</nav>
		<h3>Tagesmenu</h3>
		<p>Braten   mit
		Spätzli</p>
		<script>var x = 1;</script>
	</body></html>`
	text := PageText(markup)
	if strings.Contains(text, "Navigation") || strings.Contains(text, "var x") {
		t.Fatalf("boilerplate leaked into page text: %q", text)
	}
	if !strings.Contains(text, "Braten mit Spätzli") {
		t.Fatalf("whitespace not collapsed: %q", text)
	}
}
