package threegpp

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestFindHeaderIndexes(t *testing.T) {
	// Header shape of the real archive listing, including the leading
	// checkbox and icon columns.
	html := `
		<table style="margin-left:20px">
			<thead>
			  <tr>
			  <th style="text-align:center">
				<br>
				<input style="" title="Select all" type="checkbox" onclick="selectAll(this.checked);">
				</th>
				<th>&nbsp;</th>
				<th><a href="?sortby=name">sort by name</a>/<a href="?sortby=namerev">desc</a></th>
				<th><a href="?sortby=date">sort by date</a>/<a href="?sortby=daterev">desc</a></th>
				<th><a href="?sortby=size">sort by size</a>/<a href="?sortby=sizerev">desc</a></th>
			  </tr>
			</thead>
		</table>`

	nameIndex, dateIndex, err := FindHeaderIndexes(parseDoc(t, html))
	if err != nil {
		t.Fatalf("FindHeaderIndexes failed: %v", err)
	}
	if nameIndex != 2 || dateIndex != 3 {
		t.Errorf("FindHeaderIndexes = (%d, %d), want (2, 3)", nameIndex, dateIndex)
	}
}

func TestFindHeaderIndexes_Resorted(t *testing.T) {
	// The site lets visitors reorder columns; date may come first.
	html := `
		<table>
			<thead>
			  <tr>
				<th>sort by date</th>
				<th>sort by size</th>
				<th>sort by name</th>
			  </tr>
			</thead>
		</table>`

	nameIndex, dateIndex, err := FindHeaderIndexes(parseDoc(t, html))
	if err != nil {
		t.Fatalf("FindHeaderIndexes failed: %v", err)
	}
	if nameIndex != 2 || dateIndex != 0 {
		t.Errorf("FindHeaderIndexes = (%d, %d), want (2, 0)", nameIndex, dateIndex)
	}
}

func TestFindHeaderIndexes_SameCell(t *testing.T) {
	// "name" and "date" are located independently; one cell may satisfy
	// both.
	html := `<table><thead><tr><th>Name / Date</th></tr></thead></table>`

	nameIndex, dateIndex, err := FindHeaderIndexes(parseDoc(t, html))
	if err != nil {
		t.Fatalf("FindHeaderIndexes failed: %v", err)
	}
	if nameIndex != 0 || dateIndex != 0 {
		t.Errorf("FindHeaderIndexes = (%d, %d), want (0, 0)", nameIndex, dateIndex)
	}
}

func TestFindHeaderIndexes_Missing(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no date column", `<table><thead><tr><th>name</th><th>size</th></tr></thead></table>`},
		{"no name column", `<table><thead><tr><th>date</th><th>size</th></tr></thead></table>`},
		{"no header at all", `<table><tbody><tr><td>name</td><td>date</td></tr></tbody></table>`},
		{"empty document", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FindHeaderIndexes(parseDoc(t, tt.html))
			if !errors.Is(err, ErrHeaderNotFound) {
				t.Errorf("error = %v, want ErrHeaderNotFound", err)
			}
		})
	}
}
