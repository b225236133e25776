package threegpp

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrHeaderNotFound is returned when a listing page has no discoverable
// "name" or "date" column in its table header.
var ErrHeaderNotFound = errors.New("failed to find 'name' and 'date' columns")

// FindHeaderIndexes locates the name and date columns in a listing
// page's table header.
//
// The archive site lets visitors resort the table, which reorders the
// columns, so the positions cannot be hardwired and are rediscovered on
// every fetch. Header cells are scanned in document order; the first
// cell whose flattened text contains "name" (case-insensitive) fixes the
// name column, and independently the first containing "date" fixes the
// date column. Both must exist.
func FindHeaderIndexes(doc *goquery.Document) (nameIndex, dateIndex int, err error) {
	nameIndex, dateIndex = -1, -1

	doc.Find("thead > tr > th").Each(func(i int, cell *goquery.Selection) {
		text := strings.ToLower(cell.Text())
		if nameIndex < 0 && strings.Contains(text, "name") {
			nameIndex = i
		}
		if dateIndex < 0 && strings.Contains(text, "date") {
			dateIndex = i
		}
	})

	if nameIndex < 0 || dateIndex < 0 {
		return 0, 0, ErrHeaderNotFound
	}
	return nameIndex, dateIndex, nil
}
