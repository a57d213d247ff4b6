// Package format renders numbers, amounts and instants for display.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is emitted instead of a formatted value that is not a number.
const Placeholder = "--"

// DefaultTag is the locale the explorer renders with unless configured otherwise.
var DefaultTag = language.BrazilianPortuguese

// Locale formats values using the conventions of a language tag in a time zone.
// The zero value formats like Default().
type Locale struct {
	tag      language.Tag
	printer  *message.Printer
	location *time.Location
	layout   string
}

// NewLocale builds a Locale. A nil location means UTC.
func NewLocale(tag language.Tag, location *time.Location) Locale {
	if location == nil {
		location = time.UTC
	}
	return Locale{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		location: location,
		layout:   dateTimeLayout(tag),
	}
}

// ParseLocale builds a Locale from a BCP 47 tag such as "pt-BR".
func ParseLocale(tag string, location *time.Location) (Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{}, err
	}
	return NewLocale(parsed, location), nil
}

// Default returns the pt-BR locale in UTC.
func Default() Locale {
	return NewLocale(DefaultTag, time.UTC)
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	return l.orDefault().tag
}

// Number formats v with grouping and at most three fraction digits.
func (l Locale) Number(v float64) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return l.orDefault().printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Currency formats v as "<code> <amount>" with exactly digits fraction digits.
func (l Locale) Currency(v float64, code string, digits int) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	amount := l.orDefault().printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
	return code + " " + amount
}

// DateTime formats t as a short date followed by a medium time.
func (l Locale) DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	l = l.orDefault()
	return t.In(l.location).Format(l.layout)
}

func (l Locale) orDefault() Locale {
	if l.printer == nil {
		return Default()
	}
	return l
}

func dateTimeLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "pt", "es", "fr", "it":
		return "02/01/2006, 15:04:05"
	case "en":
		if region, _ := tag.Region(); region.String() == "GB" {
			return "02/01/2006, 15:04:05"
		}
		return "1/2/06, 3:04:05 PM"
	case "de", "ru":
		return "02.01.06, 15:04:05"
	default:
		return "2006-01-02 15:04:05"
	}
}

// Fixed formats v with exactly digits fraction digits, independent of locale.
func Fixed(v float64, digits int) string {
	if math.IsNaN(v) {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// WithUnit formats v like Fixed and appends unit. Not-a-number values yield only the placeholder.
func WithUnit(v float64, digits int, unit string) string {
	s := Fixed(v, digits)
	if s == Placeholder {
		return s
	}
	return strings.TrimSpace(s + " " + unit)
}
