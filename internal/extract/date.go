package extract

import "regexp"

var displayDateRe = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{2,4}\b`)

// DisplayDate returns the first dotted date (e.g. "18.7.2025") found anywhere
// in the raw markup, independent of item extraction. Nil when the page shows
// no date.
func DisplayDate(markup string) *string {
	m := displayDateRe.FindString(markup)
	if m == "" {
		return nil
	}
	return &m
}
