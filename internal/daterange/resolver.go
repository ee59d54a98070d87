// Package daterange turns temporal phrases in a chat message into concrete
// calendar windows.
package daterange

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Range is an inclusive calendar window. Start and End are midnight of the
// first and last day.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains reports whether t falls on any day from Start through End
func (r *Range) Contains(t time.Time) bool {
	if r == nil || t.IsZero() {
		return false
	}
	t = t.In(r.Start.Location())
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}

type phrase struct {
	pattern *regexp.Regexp
	window  func(now time.Time) *Range
}

// phrases are tried in order; the first match wins
var phrases = []phrase{
	{regexp.MustCompile(`\b(last month|previous month)\b`), func(now time.Time) *Range {
		return month(now.Year(), now.Month()-1, now.Location(), "Last Month")
	}},
	{regexp.MustCompile(`\b(this month|current month)\b`), func(now time.Time) *Range {
		return month(now.Year(), now.Month(), now.Location(), "This Month")
	}},
	{regexp.MustCompile(`\b(last week|previous week)\b`), func(now time.Time) *Range {
		return week(now, -1, "Last Week")
	}},
	{regexp.MustCompile(`\b(this week|current week)\b`), func(now time.Time) *Range {
		return week(now, 0, "This Week")
	}},
	{regexp.MustCompile(`\b(this year|current year)\b`), func(now time.Time) *Range {
		return year(now.Year(), now.Location(), "This Year")
	}},
	{regexp.MustCompile(`\b(last year|previous year)\b`), func(now time.Time) *Range {
		return year(now.Year()-1, now.Location(), "Last Year")
	}},
}

var monthNames = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

var titleCase = cases.Title(language.English)

// Resolve returns the window named in message, or nil when the message has
// no recognized temporal phrase.
func Resolve(message string, now time.Time) *Range {
	lower := strings.ToLower(message)

	for _, p := range phrases {
		if p.pattern.MatchString(lower) {
			return p.window(now)
		}
	}

	if m, name, ok := firstMonth(lower); ok {
		return month(inferMonthYear(lower, m, now), m, now.Location(), titleCase.String(name))
	}

	return nil
}

// firstMonth returns the earliest month in the calendar that the message names
func firstMonth(lower string) (time.Month, string, bool) {
	found := map[string]bool{}
	for _, name := range monthNames.FindAllString(lower, -1) {
		found[name] = true
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if found[name] {
			return m, name, true
		}
	}
	return 0, "", false
}

// inferMonthYear picks the year for a bare month name: last year when the
// message says so or when the month is still ahead of now, unless the
// message pins it to this year.
func inferMonthYear(lower string, m time.Month, now time.Time) int {
	if strings.Contains(lower, "last year") {
		return now.Year() - 1
	}
	if m > now.Month() && !strings.Contains(lower, "this year") {
		return now.Year() - 1
	}
	return now.Year()
}

func month(y int, m time.Month, loc *time.Location, label string) *Range {
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return &Range{
		Start: start,
		End:   start.AddDate(0, 1, -1),
		Label: label,
	}
}

func year(y int, loc *time.Location, label string) *Range {
	return &Range{
		Start: time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(y, time.December, 31, 0, 0, 0, 0, loc),
		Label: label,
	}
}

// week returns the Monday-to-Sunday week offset weeks from the one holding now
func week(now time.Time, offset int, label string) *Range {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := time.Date(now.Year(), now.Month(), now.Day()-(weekday-1)+7*offset, 0, 0, 0, 0, now.Location())
	return &Range{
		Start: monday,
		End:   monday.AddDate(0, 0, 6),
		Label: label,
	}
}
