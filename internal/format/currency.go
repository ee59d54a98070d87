// Package format renders amounts and text fragments for assistant replies.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[string]string{
	"USD": "$",
	"BDT": "৳",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"ALL": "L",
	"INR": "₹",
	"CAD": "$",
	"AUD": "$",
}

var printer = message.NewPrinter(language.English)

// Symbol returns the display symbol for an ISO code. Unknown codes are
// returned unchanged.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// Currency renders the magnitude of amount with two decimals and thousands
// separators, prefixed by the currency symbol. The sign is dropped; callers
// phrase direction themselves.
func Currency(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	rounded, _ := exact(math.Abs(amount)).Round(2).Float64()
	return Symbol(code) + printer.Sprintf("%.2f", rounded)
}

// exact expands the binary value of f, so 2.675 (stored as 2.67499...)
// rounds down rather than up.
func exact(f float64) decimal.Decimal {
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'f', 30, 64))
	if err != nil {
		return decimal.NewFromFloat(f)
	}
	return d
}

// Signed renders amount like Currency with a leading "-" for negatives
func Signed(amount float64, code string) string {
	if amount < 0 {
		return "-" + Currency(amount, code)
	}
	return Currency(amount, code)
}

// Plural returns word with an "s" appended unless n is 1
func Plural(n int, word string) string {
	if n > 1 {
		return word + "s"
	}
	return word
}

// Percent renders v with one decimal
func Percent(v float64) string {
	return printer.Sprintf("%.1f", v)
}

const progressCells = 20

// ProgressBar draws a 20 cell bar for a 0-100 percentage
func ProgressBar(progress float64) string {
	filled := int(math.Floor(progress / 5))
	if filled < 0 {
		filled = 0
	}
	if filled > progressCells {
		filled = progressCells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", progressCells-filled)
}
