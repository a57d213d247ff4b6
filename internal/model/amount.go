// Package model defines the explorer's domain models and the payload shapes they are built from.
package model

import (
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
)

// Amount is a decimal value received as text. An Amount whose source text
// could not be parsed is invalid and stands for "not a number".
type Amount struct {
	value decimal.Decimal
	valid bool
}

// maxExponent bounds the decimal exponent of a parsed amount. Anything
// outside it is far beyond float64 range and costly to convert.
const maxExponent = 400

// ParseAmount parses a decimal string. Unparsable input, or an exponent
// beyond ±maxExponent, yields an invalid Amount.
func ParseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return Amount{}
	}
	return Amount{value: d, valid: true}
}

// NewAmount wraps a decimal as a valid Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, valid: true}
}

// Valid reports whether the amount holds a number.
func (a Amount) Valid() bool {
	return a.valid
}

// Decimal returns the exact value and whether it is valid.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	return a.value, a.valid
}

// Float64 returns the nearest float64, or NaN for an invalid amount.
func (a Amount) Float64() float64 {
	if !a.valid {
		return math.NaN()
	}
	return a.value.InexactFloat64()
}

// Add returns a+b. The sum is invalid when either operand is.
func (a Amount) Add(b Amount) Amount {
	if !a.valid || !b.valid {
		return Amount{}
	}
	return Amount{value: a.value.Add(b.value), valid: true}
}

func (a Amount) String() string {
	if !a.valid {
		return "NaN"
	}
	return a.value.String()
}

// FormatBTC renders a as "0.00000000 BTC", or the placeholder when invalid.
func FormatBTC(a Amount) string {
	return format.WithUnit(a.Float64(), 8, "BTC")
}

// DecimalString is a monetary field transmitted as a decimal string.
// JSON numbers are accepted verbatim; null leaves it empty.
type DecimalString string

// UnmarshalJSON implements json.Unmarshaler.
func (d *DecimalString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*d = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = DecimalString(s)
	default:
		*d = DecimalString(raw)
	}
	return nil
}

// Amount parses the field.
func (d DecimalString) Amount() Amount {
	return ParseAmount(string(d))
}
