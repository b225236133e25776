package threegpp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/3gpp-downloader/internal/http"
	"github.com/handiism/3gpp-downloader/internal/model"
)

// BaseURL is the fixed root of the 3GPP spec archive.
const BaseURL = "https://www.3gpp.org/ftp/Specs/archive/"

// ErrSecurityCheck is returned when the joined listing URL escapes the
// archive base URL. Never retried.
var ErrSecurityCheck = errors.New("security check failed")

// listingTimeLayout matches the date column of the archive listing,
// e.g. "2024/3/5 9:30". The site zero-pads neither month, day nor hour.
const listingTimeLayout = "2006/1/2 15:04"

// Filters are the optional predicates applied to each listing row.
// A nil field means the predicate is not applied.
type Filters struct {
	// Release retains only rows whose Version.Major equals this value.
	Release *int

	// Date retains only rows published in this calendar year and month.
	Date *model.DateFilter
}

// Lister fetches and filters archive listing pages.
//
// One List call performs exactly one HTTP fetch and owns no state
// across calls, so a single Lister is safe to reuse.
type Lister struct {
	client  *http.Client
	baseURL string
}

// NewLister creates a Lister for the given archive base URL, or the
// public 3GPP archive if baseURL is empty.
func NewLister(client *http.Client, baseURL string) *Lister {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Lister{client: client, baseURL: baseURL}
}

// List fetches the listing page for spec and returns every archive row
// that passes the filters, in document order.
//
// The listing URL is the base joined with "{series}_series/{series}.{number}".
// A joined URL that does not start with the base fails with
// ErrSecurityCheck before any network traffic. A failed fetch or a
// non-2xx status is fatal for the call; so is a header row without
// discoverable name/date columns (ErrHeaderNotFound). Individual rows
// that are missing a link, carry an unparsable date, or whose filename
// encodes no version are skipped silently, since the listing always
// contains decorative rows and directory links.
func (l *Lister) List(ctx context.Context, spec model.SpecNumber, filters Filters) ([]model.SpecItem, error) {
	base, err := url.Parse(l.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	ref, err := url.Parse(fmt.Sprintf("%s_series/%s", spec.Series, spec))
	if err != nil {
		return nil, fmt.Errorf("joining listing path for %s: %w", spec, err)
	}
	listingURL := base.ResolveReference(ref)

	if !strings.HasPrefix(listingURL.String(), l.baseURL) {
		return nil, fmt.Errorf("%w: URL %q does not start with %q", ErrSecurityCheck, listingURL, l.baseURL)
	}

	body, err := l.client.GetString(ctx, listingURL.String())
	if err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", listingURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing listing %s: %w", listingURL, err)
	}

	nameIndex, dateIndex, err := FindHeaderIndexes(doc)
	if err != nil {
		return nil, err
	}

	maxIndex := nameIndex
	if dateIndex > maxIndex {
		maxIndex = dateIndex
	}

	var items []model.SpecItem
	doc.Find("tbody > tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= maxIndex {
			return
		}

		anchor := cells.Eq(nameIndex).Find("a[href]").First()
		if anchor.Length() == 0 {
			return
		}
		href, _ := anchor.Attr("href")
		filename := anchor.Text()

		dateText := strings.TrimSpace(cells.Eq(dateIndex).Text())
		date, err := time.ParseInLocation(listingTimeLayout, dateText, time.UTC)
		if err != nil {
			return
		}

		version, ok := ParseVersion(filename)
		if !ok {
			return
		}

		if filters.Release != nil && version.Major != *filters.Release {
			return
		}
		if filters.Date != nil {
			if date.Year() != filters.Date.Year || int(date.Month()) != filters.Date.Month.Int() {
				return
			}
		}

		items = append(items, model.SpecItem{Version: version, Date: date, URL: href})
	})

	return items, nil
}
