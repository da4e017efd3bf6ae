package menu

import (
	"fmt"
	"math"
)

// Category is one of the fixed menu line labels used by the restaurant.
// An item without a recognized label is grouped under CategoryOther for
// display, but its category field stays null in the persisted JSON.
type Category string

const (
	CategoryBreakfast Category = "Frühstück"
	CategoryMenu      Category = "Menu"
	CategoryVegi      Category = "Vegi"
	CategoryHit       Category = "Hit"
	CategoryOther     Category = "Other"
)

// DisplayOrder is the fixed grouping order for rendering. Not alphabetical.
var DisplayOrder = []Category{
	CategoryBreakfast,
	CategoryMenu,
	CategoryVegi,
	CategoryHit,
	CategoryOther,
}

// Item is a single extracted dish. Price and Category are pointers so that
// "not found" serializes as JSON null rather than a zero value.
type Item struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Category    *Category `json:"category"`
}

// FormatPrice renders a CHF amount with two decimals and a dot separator,
// regardless of the comma/dot form found in the source markup.
func FormatPrice(v float64) string {
	return fmt.Sprintf("CHF %.2f", v)
}

// Emoji returns the display emoji for a category.
func Emoji(c Category) string {
	switch c {
	case CategoryMenu:
		return "🍽️"
	case CategoryVegi:
		return "🥗"
	case CategoryHit:
		return "⭐"
	case CategoryBreakfast:
		return "🥐"
	default:
		return "🍴"
	}
}

// GroupByCategory buckets items by category, mapping unset or unknown
// categories to CategoryOther. Iteration should follow DisplayOrder.
func GroupByCategory(items []Item) map[Category][]Item {
	groups := make(map[Category][]Item)
	for _, it := range items {
		c := CategoryOther
		if it.Category != nil {
			if known(*it.Category) {
				c = *it.Category
			}
		}
		groups[c] = append(groups[c], it)
	}
	return groups
}

func known(c Category) bool {
	for _, k := range DisplayOrder {
		if c == k {
			return true
		}
	}
	return false
}

// Stats summarizes the priced items of a menu.
type Stats struct {
	Min   float64
	Max   float64
	Avg   float64
	Count int
}

// PriceStats computes min/max/average over items that carry a price.
// The second return is false when no item has a price.
func PriceStats(items []Item) (Stats, bool) {
	var s Stats
	s.Min = math.Inf(1)
	var sum float64
	for _, it := range items {
		if it.Price == nil {
			continue
		}
		v := *it.Price
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		s.Count++
	}
	if s.Count == 0 {
		return Stats{}, false
	}
	s.Avg = math.Round(sum/float64(s.Count)*100) / 100
	return s, true
}

// Range renders the min–max span, e.g. "CHF 14.80 - CHF 18.50".
func (s Stats) Range() string {
	return FormatPrice(s.Min) + " - " + FormatPrice(s.Max)
}
