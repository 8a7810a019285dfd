package parse

import (
	"strings"
	"time"
	"unicode"
)

// RelativeDate resolves listing dates like "3 days ago", "2 weeks ago" or
// "5 hours ago" against now. Months are approximated as 30 days. Returns
// nil when the text has no recognizable shape.
func RelativeDate(s string, now time.Time) *time.Time {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if strings.Contains(s, "hour") || strings.Contains(s, "minute") || strings.Contains(s, "today") {
		return &today
	}

	num := 0
	found := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			num = num*10 + int(r-'0')
			found = true
		}
	}
	if !found {
		return nil
	}

	var d time.Time
	switch {
	case strings.Contains(s, "day"):
		d = today.AddDate(0, 0, -num)
	case strings.Contains(s, "week"):
		d = today.AddDate(0, 0, -num*7)
	case strings.Contains(s, "month"):
		d = today.AddDate(0, 0, -num*30)
	default:
		return nil
	}
	return &d
}
