// Package parse turns a raw We Work Remotely posting page into a
// structured JobPosting. Parsing is best-effort: any field the page does
// not carry stays empty, and the posting is still returned.
package parse

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobfinder-engine/internal/domain"
)

// WWR listing page selectors.
const (
	selTitle       = "h2.lis-container__header__hero__company-info__title"
	selEmployer    = ".lis-container__job__sidebar__companyDetails__info__title h3"
	selAboutItem   = "li.lis-container__job__sidebar__job-about__list__item"
	selDescription = "div.lis-container__job__content__description"
)

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// aboutItem finds the sidebar "about" row whose label contains the given
// text ("Posted on", "Salary", "Job type", "Skills").
func aboutItem(doc *goquery.Document, label string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find(selAboutItem).EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if strings.Contains(li.Text(), label) {
			found = li
			return false
		}
		return true
	})
	return found
}

// Posting parses one posting page from raw HTML. The location comes from
// the board index (the page itself does not repeat it); now anchors
// relative dates.
func Posting(rawHTML, location string, now time.Time) (domain.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return domain.JobPosting{}, err
	}

	p := domain.JobPosting{
		Title:    cleanText(doc.Find(selTitle).First().Text()),
		Employer: cleanText(doc.Find(selEmployer).First().Text()),
		Location: cleanText(location),
	}

	if li := aboutItem(doc, "Posted on"); li != nil {
		p.DatePosted = RelativeDate(li.Find("span").First().Text(), now)
	}
	if li := aboutItem(doc, "Salary"); li != nil {
		p.Primary = SalaryText(li.Find("span.box").First().Text())
	}
	if li := aboutItem(doc, "Job type"); li != nil {
		p.JobType = cleanText(li.Find("span.box--jobType").First().Text())
	}
	if li := aboutItem(doc, "Skills"); li != nil {
		var skills []string
		li.Find("span.box--multi").Each(func(_ int, s *goquery.Selection) {
			if t := cleanText(s.Text()); t != "" {
				skills = append(skills, t)
			}
		})
		p.Skills = strings.Join(skills, ",")
	}

	if desc := doc.Find(selDescription).First(); desc.Length() > 0 {
		p.Description = descriptionText(desc)
	}

	return p, nil
}

// descriptionText flattens the description block to plain text, one
// non-empty line per block element.
func descriptionText(sel *goquery.Selection) string {
	var lines []string
	for _, line := range strings.Split(sel.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
