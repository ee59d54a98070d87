package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shalconnects/balanze-go/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.Logger = (*Logger)(nil)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("info", &buf)

	logger.Warn("Failed to fetch collection", "collection", "accounts", "userId", "u-1", "error", errors.New("boom"))

	line := decode(t, &buf)
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "Failed to fetch collection", line["message"])
	assert.Equal(t, "accounts", line["collection"])
	assert.Equal(t, "u-1", line["userId"])
	assert.Equal(t, "boom", line["error"])
}

func TestLogger_DanglingValue(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("debug", &buf)

	logger.Debug("odd", "count", 3, "leftover")

	line := decode(t, &buf)
	assert.Equal(t, float64(3), line["count"])
	assert.Equal(t, "leftover", line["extra"])
}

func TestLogger_Level(t *testing.T) {
	tests := []struct {
		level  string
		logged bool
	}{
		{"debug", true},
		{"info", false},
		{"", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			NewWithOutput(tt.level, &buf).Debug("hidden?")
			assert.Equal(t, tt.logged, buf.Len() > 0)
		})
	}

	var buf bytes.Buffer
	logger := NewWithOutput("error", &buf)
	logger.Warn("dropped")
	assert.Zero(t, buf.Len())
	logger.Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSilent().Error("nothing", "k", "v")
	})
}
