package menu

import "time"

// Summary is the persistence contract written to menu.json. Field names and
// types are exact and must round-trip losslessly through serialization.
type Summary struct {
	Restaurant  string    `json:"restaurant"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	ScrapedAt   time.Time `json:"scraped_at"`
	DisplayDate *string   `json:"display_date"`
	MenuItems   []Item    `json:"menu_items"`
	TotalItems  int       `json:"total_items"`
}

// NewSummary assembles a summary for the given scrape result. TotalItems is
// derived from the item slice so the two can never drift apart.
func NewSummary(restaurant, location, url string, scrapedAt time.Time, displayDate *string, items []Item) Summary {
	if items == nil {
		items = []Item{}
	}
	return Summary{
		Restaurant:  restaurant,
		Location:    location,
		URL:         url,
		ScrapedAt:   scrapedAt,
		DisplayDate: displayDate,
		MenuItems:   items,
		TotalItems:  len(items),
	}
}
