package balanze

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"negative float", -40.0, -40},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"numeric string", "100.25", 100.25},
		{"padded string", "  42 ", 42},
		{"numeric prefix", "12.5abc", 12.5},
		{"leading dot", ".5", 0.5},
		{"exponent", "1e3", 1000},
		{"signed string", "-3.75", -3.75},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"overflowing string", "1e999", 0},
		{"slice", []string{"1"}, 0},
		{"json number", json.Number("3.5"), 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrDefault(tt.input))
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var row struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
	}

	err := json.Unmarshal([]byte(`{"a": 1500.5, "b": "25.10", "c": null, "d": "n/a", "e": false}`), &row)
	require.NoError(t, err)

	assert.Equal(t, 1500.5, row.A.Float64())
	assert.Equal(t, 25.10, row.B.Float64())
	assert.Zero(t, row.C.Float64())
	assert.Zero(t, row.D.Float64())
	assert.Zero(t, row.E.Float64())
}
