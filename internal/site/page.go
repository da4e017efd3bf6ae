package site

import (
	"bytes"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/lunchboard/menuscrape/internal/menu"
)

// pageData is the fully prepared view model: grouping, ordering and price
// formatting happen here so the template stays declarative.
type pageData struct {
	Restaurant string
	Location   string
	SourceURL  string
	Updated    string
	TotalItems int
	PriceLine  string
	Sections   []section
}

type section struct {
	Name  string
	Emoji string
	Items []sectionItem
}

type sectionItem struct {
	Name        string
	Description string
	Price       string
	Category    string
}

const maxDescriptionRunes = 200

func renderPage(s menu.Summary) ([]byte, error) {
	data := pageData{
		Restaurant: s.Restaurant,
		Location:   s.Location,
		SourceURL:  s.URL,
		Updated:    s.ScrapedAt.Format("02.01.2006 15:04"),
		TotalItems: s.TotalItems,
	}
	if s.DisplayDate != nil {
		data.Updated = *s.DisplayDate
	}
	if stats, ok := menu.PriceStats(s.MenuItems); ok {
		data.PriceLine = "💰 " + stats.Range() + " | Avg: " + menu.FormatPrice(stats.Avg)
	}

	groups := menu.GroupByCategory(s.MenuItems)
	for _, cat := range menu.DisplayOrder {
		items := groups[cat]
		if len(items) == 0 {
			continue
		}
		sec := section{Name: strings.ToUpper(string(cat)), Emoji: menu.Emoji(cat)}
		for _, it := range items {
			si := sectionItem{
				Name:        it.Name,
				Description: truncateRunes(it.Description, maxDescriptionRunes),
			}
			if it.Price != nil {
				si.Price = menu.FormatPrice(*it.Price)
			}
			if it.Category != nil {
				si.Category = string(*it.Category)
			}
			sec.Items = append(sec.Items, si)
		}
		data.Sections = append(data.Sections, sec)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta name="theme-color" content="#2563eb">
<meta name="apple-mobile-web-app-capable" content="yes">
<meta name="apple-mobile-web-app-status-bar-style" content="default">
<meta name="apple-mobile-web-app-title" content="{{.Restaurant}}">
<title>{{.Restaurant}} – Mittagsmenü</title>
<link rel="manifest" href="./manifest.json">
<link rel="icon" type="image/png" sizes="32x32" href="./icon-32.png">
<link rel="icon" type="image/png" sizes="16x16" href="./icon-16.png">
<link rel="apple-touch-icon" sizes="180x180" href="./icon-180.png">
<link rel="apple-touch-icon" sizes="152x152" href="./icon-152.png">
<link rel="apple-touch-icon" sizes="120x120" href="./icon-120.png">
<style>` + pageStyles + `</style>
</head>
<body>
<div class="container">
<header class="header">
<h1>🍽️ {{.Restaurant}}</h1>
<p class="location">{{.Location}}</p>
</header>
<div class="meta-info">
<span class="updated">Updated: {{.Updated}}</span>
<span class="count">{{.TotalItems}} menu items</span>
{{if .PriceLine}}<span class="prices">{{.PriceLine}}</span>{{end}}
</div>
<div class="refresh-info">Menu refreshes automatically on weekdays.</div>
{{if not .Sections}}
<div class="no-items">
<p>😔 No menu items available</p>
<p>Check back later or visit the restaurant website directly.</p>
</div>
{{end}}
{{range .Sections}}
<section class="category-section">
<h2 class="category-title">{{.Emoji}} {{.Name}} <span class="item-count">({{len .Items}})</span></h2>
<div class="menu-grid">
{{range .Items}}
<div class="menu-item">
<div class="item-name">{{.Name}}</div>
{{if .Description}}<div class="item-description">{{.Description}}</div>{{end}}
<div class="item-footer">
{{if .Price}}<span class="item-price">{{.Price}}</span>{{end}}
{{if .Category}}<span class="item-category">{{.Category}}</span>{{end}}
</div>
</div>
{{end}}
</div>
</section>
{{end}}
<footer class="footer">
<a href="{{.SourceURL}}" target="_blank" rel="noopener">Restaurant website</a>
<a href="./menu.json" download>Download JSON</a>
<a href="javascript:window.print()">Print</a>
</footer>
</div>
<script>
if ('serviceWorker' in navigator) {
  navigator.serviceWorker.register('./sw.js');
}
</script>
</body>
</html>
`))
