package balanze

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		dateOnly bool
	}{
		{
			name:     "date only format YYYY-MM-DD",
			input:    `"2025-08-30"`,
			want:     "2025-08-30",
			dateOnly: true,
		},
		{
			name:  "RFC3339 format",
			input: `"2025-08-30T15:04:05Z"`,
			want:  "2025-08-30",
		},
		{
			name:  "postgres timestamptz with fraction",
			input: `"2025-08-30T15:04:05.123456+00:00"`,
			want:  "2025-08-30",
		},
		{
			name:  "datetime without timezone",
			input: `"2025-08-30T15:04:05"`,
			want:  "2025-08-30",
		},
		{
			name:  "space separated timestamp",
			input: `"2025-08-30 15:04:05+00"`,
			want:  "2025-08-30",
		},
		{
			name:  "null value",
			input: `null`,
			want:  "",
		},
		{
			name:  "empty string",
			input: `""`,
			want:  "",
		},
		{
			name:  "invalid format decodes to zero",
			input: `"not-a-date"`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			require.NoError(t, err)

			got := ""
			if !d.Time.IsZero() {
				got = d.Time.Format("2006-01-02")
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dateOnly, d.DateOnly)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2025, time.August, 30))
	require.NoError(t, err)
	assert.Equal(t, `"2025-08-30"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_In(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	// A date-only value keeps its calendar day
	d := NewDate(2024, time.January, 1)
	got := d.In(loc)
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, loc, got.Location())

	// A timestamp is converted
	ts, ok := ParseDate("2024-01-01T02:00:00Z")
	require.True(t, ok)
	assert.Equal(t, 31, ts.In(loc).Day())

	assert.True(t, Date{}.In(loc).IsZero())
}
