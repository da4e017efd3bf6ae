package site

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/lunchboard/menuscrape/internal/menu"
)

// WritePDF renders an A4 menu card for printing and posting. Core fonts only,
// so text goes through the cp1252 translator for umlauts.
func WritePDF(s menu.Summary, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Restaurant+" Mittagsmenü", true)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 12, tr(s.Restaurant), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, tr(s.Location), "", 1, "C", false, 0, "")

	dateLine := s.ScrapedAt.Format("02.01.2006")
	if s.DisplayDate != nil {
		dateLine = *s.DisplayDate
	}
	pdf.CellFormat(0, 6, tr("Mittagsmenü – "+dateLine), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	groups := menu.GroupByCategory(s.MenuItems)
	for _, cat := range menu.DisplayOrder {
		items := groups[cat]
		if len(items) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(31, 41, 55)
		pdf.CellFormat(0, 9, tr(strings.ToUpper(string(cat))), "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		for _, it := range items {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetTextColor(31, 41, 55)
			price := ""
			if it.Price != nil {
				price = menu.FormatPrice(*it.Price)
			}
			pdf.CellFormat(150, 6, tr(it.Name), "", 0, "L", false, 0, "")
			pdf.SetTextColor(5, 150, 105)
			pdf.CellFormat(0, 6, price, "", 1, "R", false, 0, "")
			if it.Description != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(75, 85, 99)
				pdf.MultiCell(0, 4.5, tr(it.Description), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(3)
	}

	if len(s.MenuItems) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 10, tr("Heute keine Menüangaben verfügbar."), "", 1, "C", false, 0, "")
	}

	pdf.SetY(-16)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(156, 163, 175)
	pdf.CellFormat(0, 5, tr(s.URL), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
