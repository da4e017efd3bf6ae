package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lunchboard/menuscrape/internal/menu"
)

// The fallback pass gives up on the token stream entirely and pattern-matches
// the raw markup. It only runs when the primary pass produced zero items,
// which in practice means the page structure changed underneath us.

const headingWindow = 1000 // chars of markup inspected after each heading

var (
	h3Re       = regexp.MustCompile(`(?i)<h3[^>]*>([^<]+)</h3>`)
	tagTextRe  = regexp.MustCompile(`>([^<]+)<`)
	chfHintRe  = regexp.MustCompile(`CHF\s*\d+`)
	anyTagRe   = regexp.MustCompile(`<[^>]+>`)
	priceAdjRe = regexp.MustCompile(`([^<>\n]{10,80})\s*.*?CHF\s*(\d+[,.]?\d*)`)
)

func fallbackItems(markup string) []*menu.Item {
	if items := headingWindowItems(markup); len(items) > 0 {
		return items
	}
	return priceAdjacentItems(markup)
}

// headingWindowItems pairs every plausible <h3> with whatever price,
// category and prose fragments appear in a fixed-size window of markup
// right after it.
func headingWindowItems(markup string) []*menu.Item {
	var items []*menu.Item
	for _, m := range h3Re.FindAllStringSubmatchIndex(markup, -1) {
		name := strings.TrimSpace(markup[m[2]:m[3]])
		if utf8.RuneCountInString(name) <= 3 || denylisted(name, fallbackNameDenylist) {
			continue
		}

		end := m[1] + headingWindow
		if end > len(markup) {
			end = len(markup)
		}
		window := markup[m[1]:end]

		it := &menu.Item{Name: name}
		if pm := chfPriceRe.FindStringSubmatch(window); pm != nil {
			if v, ok := parseAmount(pm[1]); ok {
				it.Price = &v
			}
		}

		var parts []string
		for _, tm := range tagTextRe.FindAllStringSubmatch(window, -1) {
			text := strings.TrimSpace(tm[1])
			if text == "" || text == name || isCategoryToken(text) {
				continue
			}
			if utf8.RuneCountInString(text) <= 3 || chfHintRe.MatchString(text) {
				continue
			}
			parts = append(parts, text)
			if len(parts) == 3 {
				break
			}
		}
		it.Description = strings.Join(parts, " ")

		for _, cat := range categoryTokens {
			if strings.Contains(window, string(cat)) {
				c := cat
				it.Category = &c
				break
			}
		}
		items = append(items, it)
	}
	return items
}

// priceAdjacentItems is the last resort: any short text segment directly
// preceding a CHF amount becomes a name-plus-price item.
func priceAdjacentItems(markup string) []*menu.Item {
	var items []*menu.Item
	for _, m := range priceAdjRe.FindAllStringSubmatch(markup, -1) {
		name := strings.TrimSpace(anyTagRe.ReplaceAllString(m[1], ""))
		n := utf8.RuneCountInString(name)
		if n <= 5 || n >= 60 || denylisted(name, corporateDenylist) {
			continue
		}
		v, ok := parseAmount(m[2])
		if !ok {
			continue
		}
		items = append(items, &menu.Item{Name: name, Price: &v})
	}
	return items
}
