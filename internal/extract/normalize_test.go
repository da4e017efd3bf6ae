package extract

import (
	"testing"

	"github.com/lunchboard/menuscrape/internal/menu"
)

func TestCleanDescription_KeepsAtMostThreeSentences(t *testing.T) {
	desc := "Erster Satz über das Gericht. Zweiter Satz mit Beilagen. " +
		"Dritter Satz zur Sauce. Vierter Satz fällt weg. Fünfter auch."
	got := cleanDescription(desc)
	want := "Erster Satz über das Gericht. Zweiter Satz mit Beilagen. Dritter Satz zur Sauce."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanDescription_DropsNoisePhrases(t *testing.T) {
	cases := map[string]string{
		"staff name":    "Unser Betriebsleiter Hans Müller freut sich",
		"survey prompt": "Nehmen Sie an unserer Umfrage teil",
		"email address": "schreiben sie an info@example.ch bitte",
		"phone number":  "Erreichbar unter +41 31 555 44 33",
		"legal footer":  "Impressum und rechtliche Hinweise",
	}
	for name, noisy := range cases {
		t.Run(name, func(t *testing.T) {
			got := cleanDescription("Feiner Braten mit Jus. " + noisy + ".")
			if got != "Feiner Braten mit Jus." {
				t.Fatalf("noise survived cleanup: %q", got)
			}
		})
	}
}

func TestCleanDescription_SegmentLengthBounds(t *testing.T) {
	long := "Dieser Satz ist mit Absicht viel zu lang geraten und beschreibt in epischer Breite " +
		"jede einzelne Zutat des heutigen Mittagsgerichts inklusive Herkunft"
	got := cleanDescription("Kurz. " + long + ". Gute Beilagen dazu.")
	if got != "Gute Beilagen dazu." {
		t.Fatalf("length bounds not applied: %q", got)
	}
}

func TestCleanDescription_AppendsTerminalPeriod(t *testing.T) {
	if got := cleanDescription("Braten mit Spätzli und Salat"); got != "Braten mit Spätzli und Salat." {
		t.Fatalf("missing terminal period: %q", got)
	}
	if got := cleanDescription(""); got != "" {
		t.Fatalf("empty description grew content: %q", got)
	}
}

func TestRecoverPrice_FromDescription(t *testing.T) {
	it := &menu.Item{Name: "Tagesteller", Description: "Braten mit Jus 14,80 und Salat"}
	recoverPrice(it)
	if it.Price == nil || *it.Price != 14.80 {
		t.Fatalf("price = %v", it.Price)
	}
	if it.Description != "Braten mit Jus und Salat" {
		t.Fatalf("token not scrubbed: %q", it.Description)
	}
}

func TestRecoverPrice_RespectsPlausibilityWindow(t *testing.T) {
	it := &menu.Item{Name: "Bankett", Description: "Platte für 99,00 Personen"}
	recoverPrice(it)
	if it.Price != nil {
		t.Fatalf("implausible amount accepted: %v", *it.Price)
	}
	if it.Description != "Platte für 99,00 Personen" {
		t.Fatalf("description modified without recovery: %q", it.Description)
	}
}

func TestApplyFragment_CHFPriceBeatsBareToken(t *testing.T) {
	it := &menu.Item{Name: "Testgericht"}
	applyFragment(it, "Heute CHF 13.90 statt 16.90")
	if it.Price == nil || *it.Price != 13.90 {
		t.Fatalf("price = %v", it.Price)
	}
	if it.Description != "" {
		t.Fatalf("price fragment contributed prose: %q", it.Description)
	}
}

func TestApplyFragment_CategoryAssignedOnce(t *testing.T) {
	it := &menu.Item{Name: "Testgericht"}
	applyFragment(it, "Vegi")
	applyFragment(it, "Hit")
	if it.Category == nil || *it.Category != menu.CategoryVegi {
		t.Fatalf("category = %v, want first assignment kept", it.Category)
	}
}

func TestApplyFragment_DescriptionAccumulates(t *testing.T) {
	it := &menu.Item{Name: "Testgericht"}
	applyFragment(it, "Mit   Reis\n und Gemüse")
	applyFragment(it, "Dazu Tagessalat")
	if it.Description != "Mit Reis und Gemüse Dazu Tagessalat" {
		t.Fatalf("description = %q", it.Description)
	}
}

func TestApplyFragment_FragmentLengthBounds(t *testing.T) {
	it := &menu.Item{Name: "Testgericht"}
	applyFragment(it, "ab")
	if it.Description != "" {
		t.Fatalf("tiny fragment kept: %q", it.Description)
	}
	long := make([]byte, 0, 210)
	for len(long) < 210 {
		long = append(long, "lange beschreibung "...)
	}
	applyFragment(it, string(long[:210]))
	if it.Description != "" {
		t.Fatalf("oversized fragment kept (len %d)", len(it.Description))
	}
}

func TestFinalize_DropsNameOnlyItems(t *testing.T) {
	price := 12.0
	out := finalize([]*menu.Item{
		{Name: "Ohne alles"},
		{Name: "Mit Preis", Price: &price},
	})
	if len(out) != 1 || out[0].Name != "Mit Preis" {
		t.Fatalf("retention filter broken: %+v", out)
	}
}
