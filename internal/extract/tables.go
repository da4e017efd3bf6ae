package extract

import "github.com/lunchboard/menuscrape/internal/menu"

// Heuristic tables. These are the only place site-specific phrases live, so
// pointing the scraper at a sister restaurant means editing this file and
// nothing else.

// nameDenylist marks <h3> texts that are navigation or marketing boilerplate,
// never dish names. Matched case-insensitively as substrings.
var nameDenylist = []string{
	"öffnungszeiten",
	"kontakt",
	"ihre meinung",
	"wir machen",
	"hot & delicious",
	"dessert bieten wir",
	"kaffee, tee",
	"compass group",
	"jobs",
	"impressum",
	"datenschutz",
}

// categoryTokens are checked by containment, in this order; the first hit
// wins for a fragment.
var categoryTokens = []menu.Category{
	menu.CategoryMenu,
	menu.CategoryVegi,
	menu.CategoryHit,
	menu.CategoryBreakfast,
}

// noisePhrases disqualify a description sentence entirely: survey prompts,
// opening hours, staff names, corporate branding, legal footers. Matched
// case-insensitively as substrings.
var noisePhrases = []string{
	"feedback",
	"umfrage",
	"lächeln",
	"öffnungszeiten",
	"burger-variationen",
	"behling",
	"betriebsleiter",
	"compass",
	"kaserne@",
	"+41",
	"jobs",
	"copyright",
	"impressum",
	"datenschutz",
	"cookies",
}

// fallbackNameDenylist is the (slightly different) heading filter used by the
// raw-markup fallback pass.
var fallbackNameDenylist = []string{
	"öffnungszeiten",
	"kontakt",
	"ihre meinung",
	"wir machen",
	"hot & delicious",
	"dessert bieten wir",
	"burger vom",
}

// corporateDenylist filters price-adjacent text captured by the last-resort
// pattern scan.
var corporateDenylist = []string{
	"copyright",
	"compass",
	"group",
	"öffnungszeiten",
	"kontakt",
	"impressum",
}

// Plausibility window for prices found as bare two-decimal tokens. Amounts
// carrying an explicit CHF prefix are trusted as-is.
const (
	minPlausiblePrice = 5.0
	maxPlausiblePrice = 50.0
)
