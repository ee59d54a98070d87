package balanze

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading decimal literal of a string
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Number is a monetary or numeric column that tolerates whatever the store
// sends: JSON numbers, numeric strings, null, booleans or garbage. Values that
// cannot be read as a number decode to 0 instead of failing the whole row.
type Number float64

// UnmarshalJSON implements json.Unmarshaler for Number
func (n *Number) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(ParseOrDefault(v))
	return nil
}

// Float64 returns the value as a float64
func (n Number) Float64() float64 {
	return float64(n)
}

// ParseOrDefault coerces v to a finite float64.
//
// Numbers pass through. Strings are read like a lenient decimal parser: leading
// whitespace is skipped and the longest numeric prefix is used, so "12.5abc"
// gives 12.5 and "abc" gives 0. nil, booleans, NaN, infinities and every other
// type give 0.
func ParseOrDefault(v interface{}) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case Number:
		f = float64(x)
	case json.Number:
		f = parsePrefix(x.String())
	case string:
		f = parsePrefix(x)
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parsePrefix(s string) float64 {
	match := numericPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return f
}
