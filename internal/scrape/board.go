package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing is one catalog entry found on the board's landing page.
type Listing struct {
	URL      string
	Location string
}

// Listings extracts job page links and company locations from the board's
// landing page. Duplicate links (featured sections repeat entries) keep
// only their first occurrence.
func Listings(landingHTML, baseURL string) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(landingHTML))
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []Listing

	doc.Find(`[id^="category-"] > article > ul > li`).Each(func(_ int, li *goquery.Selection) {
		var link *goquery.Selection
		li.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if strings.HasPrefix(href, "/remote-jobs/") {
				link = a
				return false
			}
			return true
		})
		if link == nil {
			return
		}

		href, _ := link.Attr("href")
		jobURL := baseURL + href
		if seen[jobURL] {
			return
		}
		seen[jobURL] = true

		location := strings.TrimSpace(link.Find("p.new-listing__company-headquarters").First().Text())
		if location == "" {
			location = "Remote"
		}

		out = append(out, Listing{URL: jobURL, Location: location})
	})

	return out, nil
}
