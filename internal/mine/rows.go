package mine

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SplitRows breaks a section's HTML into discrete text units.
//
// Strategy 1: table rows, the usual shape of a patent detail table.
// Strategy 2: block-level children (div, p, li, dt/dd pairs flattened).
// Strategy 3: the section's text split on newlines, for sections with no
// useful markup at all.
func SplitRows(sectionHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sectionHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing section HTML: %w", err)
	}

	var units []string
	appendUnit := func(text string) {
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			units = append(units, text)
		}
	}

	doc.Find("tr").Each(func(_ int, sel *goquery.Selection) {
		appendUnit(sel.Text())
	})
	if len(units) > 0 {
		return units, nil
	}

	// Definition lists: a dt label and its dd value form one unit.
	doc.Find("dt").Each(func(_ int, sel *goquery.Selection) {
		appendUnit(sel.Text() + " " + sel.NextFiltered("dd").Text())
	})
	doc.Find("div, p, li").Each(func(_ int, sel *goquery.Selection) {
		// Only leaf-ish blocks: a container whose children are themselves
		// blocks would re-pair keywords and dates across units.
		if sel.Children().Filter("div, p, li, table, dl").Length() > 0 {
			return
		}
		appendUnit(sel.Text())
	})
	if len(units) > 0 {
		return units, nil
	}

	for _, line := range strings.Split(doc.Text(), "\n") {
		appendUnit(line)
	}
	return units, nil
}

// ScanHTML splits a section's HTML into units and scans each one.
func (f Findings) ScanHTML(sectionHTML string) error {
	units, err := SplitRows(sectionHTML)
	if err != nil {
		return err
	}
	f.ScanUnits(units)
	return nil
}
