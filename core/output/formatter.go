// Package output provides output formatting for quotes.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"port-charges/core/engine"
	"port-charges/core/tariff"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Options control rendering
type Options struct {
	// ShowZero renders charge lines whose amount is zero
	ShowZero bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderSea writes a sea shipment quote
	RenderSea(w io.Writer, q *engine.SeaQuote) error

	// RenderAir writes an air shipment quote
	RenderAir(w io.Writer, q *engine.AirQuote) error

	// RenderTariff writes a rate table
	RenderTariff(w io.Writer, entries []tariff.Entry, currency string) error
}

// New returns the formatter for a format name
func New(format string, opts Options) (Formatter, error) {
	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatCLI, "":
		return &CLIFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want cli or json)", format)
	}
}

// Money formats an amount with thousands grouping and two decimals,
// e.g. $1,234.56 for USD or TZS 1,234.56 for currencies without a symbol here.
func Money(amount decimal.Decimal, code string) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	return sign + symbol(code) + group(s)
}

// group inserts thousands separators into an unsigned fixed-point decimal string
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}

func symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code) + " "
	}
	switch unit {
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	default:
		return unit.String() + " "
	}
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
