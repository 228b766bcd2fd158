package rate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// leading decimal number, the part of the input a browser's parseFloat would keep
var amountPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the longest numeric prefix of raw, ignoring leading spaces.
func ParseAmount(raw string) (decimal.Decimal, error) {
	prefix := amountPrefix.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if prefix == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, ErrInvalidAmount
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}
