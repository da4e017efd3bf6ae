package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/lunchboard/menuscrape/internal/menu"
)

// Items extracts menu items from raw markup. The primary pass walks the
// token stream; when it survives finalization with nothing, the cruder
// raw-markup fallback runs instead. Both feed the same finalization.
func Items(markup string) []menu.Item {
	items := finalize(primaryItems(markup))
	if len(items) == 0 {
		items = finalize(fallbackItems(markup))
	}
	return items
}

// primaryItems scans the document as a flat token stream with two states:
// no active item, or accumulating into the most recently started item.
// An <h3> opens a candidate name; <p>, <div> and <span> open prose runs
// that are routed to the active item. There is no backtracking: a
// non-denylisted name always ends accumulation for the previous item.
func primaryItems(markup string) []*menu.Item {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		items  []*menu.Item
		active *menu.Item
		buf    strings.Builder
		inName bool
		inText bool
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail; either way the scan is done.
			return items

		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "h3":
				inName = true
				buf.Reset()
			case "p", "div", "span":
				inText = true
				buf.Reset()
			}

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div", "span":
				inText = false
				buf.Reset()
			}

		case html.TextToken:
			if inName || inText {
				buf.Write(z.Text())
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "h3":
				if !inName {
					continue
				}
				inName = false
				candidate := strings.TrimSpace(buf.String())
				if candidate == "" || denylisted(candidate, nameDenylist) {
					continue
				}
				active = &menu.Item{Name: candidate}
				items = append(items, active)
			case "p", "div", "span":
				if !inText {
					continue
				}
				inText = false
				text := strings.TrimSpace(buf.String())
				if text == "" || active == nil {
					continue
				}
				applyFragment(active, text)
			}
		}
	}
}

// denylisted reports whether text contains any listed phrase,
// case-insensitively.
func denylisted(text string, list []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range list {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
