package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lunchboard/menuscrape/internal/menu"
)

var (
	// Currency-prefixed amount, e.g. "CHF 14.80" or "CHF14,80". Trusted
	// without a plausibility check.
	chfPriceRe = regexp.MustCompile(`CHF\s*(\d+[,.]?\d*)`)
	// Bare two-decimal token, e.g. "14,80" inside prose. Only accepted
	// inside the plausibility window.
	bareTokenRe = regexp.MustCompile(`\b\d{1,2}[,.]\d{2}\b`)
	bareGroupRe = regexp.MustCompile(`\b(\d{1,2}[,.]\d{2})\b`)
	descTokenRe = regexp.MustCompile(`(\d{1,2}[,.]\d{2})`)
	stripPxRe   = regexp.MustCompile(`\s*\d{1,2}[,.]\d{2}\s*`)
	sentenceRe  = regexp.MustCompile(`[.!?]`)
	emailRe     = regexp.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
	phoneRe     = regexp.MustCompile(`\+\d+\s+\d+`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

// parseAmount normalizes the decimal separator and parses a CHF amount.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// applyFragment routes one trimmed prose fragment to the active item:
// price first (currency-prefixed, then bare token), then category, then
// description accumulation. A price, once set, is never overwritten within
// the item's scope.
func applyFragment(it *menu.Item, text string) {
	chfMatch := chfPriceRe.FindStringSubmatch(text)
	if it.Price == nil && chfMatch != nil {
		if v, ok := parseAmount(chfMatch[1]); ok {
			it.Price = &v
		}
	}
	if it.Price == nil {
		if m := bareGroupRe.FindStringSubmatch(text); m != nil {
			if v, ok := parseAmount(m[1]); ok && v >= minPlausiblePrice && v <= maxPlausiblePrice {
				it.Price = &v
			}
		}
	}

	if it.Category == nil {
		for _, cat := range categoryTokens {
			if strings.Contains(text, string(cat)) {
				c := cat
				it.Category = &c
				break
			}
		}
	}

	// Price- or category-bearing fragments never contribute prose.
	if chfMatch != nil || isCategoryToken(text) ||
		bareTokenRe.MatchString(text) || strings.Contains(text, "CHF") {
		return
	}
	clean := strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
	if n := utf8.RuneCountInString(clean); n > 3 && n < 200 {
		if it.Description != "" {
			it.Description += " " + clean
		} else {
			it.Description = clean
		}
	}
}

func isCategoryToken(text string) bool {
	for _, cat := range categoryTokens {
		if text == string(cat) {
			return true
		}
	}
	return false
}

// Normalize runs the shared finalization pass over candidates produced
// outside the heuristic extractor, such as the LLM assist.
func Normalize(items []menu.Item) []menu.Item {
	raw := make([]*menu.Item, len(items))
	for i := range items {
		raw[i] = &items[i]
	}
	return finalize(raw)
}

// finalize runs the one-time cleanup pass: retention filter, description
// cleanup, late price recovery. Surviving items keep extraction order.
func finalize(raw []*menu.Item) []menu.Item {
	out := make([]menu.Item, 0, len(raw))
	for _, it := range raw {
		if it.Name == "" || (it.Price == nil && it.Description == "") {
			continue
		}
		it.Description = cleanDescription(it.Description)
		recoverPrice(it)
		out = append(out, *it)
	}
	return out
}

// cleanDescription keeps at most the first three sentences, drops noisy or
// implausibly sized ones, and restores a trailing period.
func cleanDescription(desc string) string {
	if desc == "" {
		return ""
	}
	segments := sentenceRe.Split(desc, -1)
	if len(segments) > 3 {
		segments = segments[:3]
	}
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if n := utf8.RuneCountInString(seg); n <= 5 || n >= 100 {
			continue
		}
		if denylisted(seg, noisePhrases) {
			continue
		}
		if emailRe.MatchString(seg) || phoneRe.MatchString(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	out := strings.Join(kept, ". ")
	if out != "" && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

// recoverPrice pulls a plausible bare amount out of the description when no
// price was found during accumulation, then scrubs the token from the text.
func recoverPrice(it *menu.Item) {
	if it.Price != nil || it.Description == "" {
		return
	}
	m := descTokenRe.FindStringSubmatch(it.Description)
	if m == nil {
		return
	}
	v, ok := parseAmount(m[1])
	if !ok || v < minPlausiblePrice || v > maxPlausiblePrice {
		return
	}
	it.Price = &v
	scrubbed := stripPxRe.ReplaceAllString(it.Description, " ")
	it.Description = strings.TrimSpace(spacesRe.ReplaceAllString(scrubbed, " "))
}
