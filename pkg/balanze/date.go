package balanze

import (
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
}

// Date is a custom type that handles date-only and timestamp JSON values.
// Values the store sends that match no known layout decode to the zero Date.
type Date struct {
	time.Time

	// DateOnly is set when the value carried no time of day
	DateOnly bool
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	*d = Date{}
	if str == "" || str == "null" {
		return nil
	}

	parsed, ok := ParseDate(str)
	if ok {
		*d = parsed
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, d.String())), nil
}

// String returns the date as a string
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	if d.DateOnly {
		return d.Time.Format(dateOnlyLayout)
	}
	return d.Time.Format(time.RFC3339)
}

// In places the date in loc. A date-only value becomes midnight of the same
// calendar day in loc rather than being shifted from UTC.
func (d Date) In(loc *time.Location) time.Time {
	if d.Time.IsZero() {
		return time.Time{}
	}
	if d.DateOnly {
		y, m, day := d.Time.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, loc)
	}
	return d.Time.In(loc)
}

// ParseDate parses the date layouts the store emits
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return Date{Time: t, DateOnly: true}, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, true
		}
	}
	return Date{}, false
}

// NewDate returns a date-only Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), DateOnly: true}
}
