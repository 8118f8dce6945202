// Package types - Charge breakdown types
package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// LineKind distinguishes charge lines from the grand total line
type LineKind string

const (
	LineCharge LineKind = "charge"
	LineTotal  LineKind = "total"
)

// ChargeLine is a single named amount in a breakdown
type ChargeLine struct {
	// Name is the display name of the charge
	Name string `json:"name"`

	// Amount is never negative
	Amount decimal.Decimal `json:"amount"`

	// Kind is charge or total
	Kind LineKind `json:"kind"`
}

// ChargeBreakdown is an ordered, duplicate-free list of charge lines
// ending in exactly one total line. The zero value is empty.
type ChargeBreakdown struct {
	lines []ChargeLine
	index map[string]int
}

// BreakdownBuilder assembles a ChargeBreakdown in display order
type BreakdownBuilder struct {
	b      ChargeBreakdown
	closed bool
}

// NewBreakdownBuilder creates an empty builder
func NewBreakdownBuilder() *BreakdownBuilder {
	return &BreakdownBuilder{b: ChargeBreakdown{index: make(map[string]int)}}
}

// Charge appends a charge line. Duplicate names and negative amounts panic:
// line names are fixed by the calculators and inputs are validated upstream.
func (bb *BreakdownBuilder) Charge(name string, amount decimal.Decimal) *BreakdownBuilder {
	bb.add(ChargeLine{Name: name, Amount: amount, Kind: LineCharge})
	return bb
}

// Total appends the grand total line and returns the finished breakdown
func (bb *BreakdownBuilder) Total(name string, amount decimal.Decimal) ChargeBreakdown {
	bb.add(ChargeLine{Name: name, Amount: amount, Kind: LineTotal})
	bb.closed = true
	return bb.b
}

func (bb *BreakdownBuilder) add(line ChargeLine) {
	if bb.closed {
		panic(fmt.Sprintf("breakdown: line %q added after total", line.Name))
	}
	if _, dup := bb.b.index[line.Name]; dup {
		panic(fmt.Sprintf("breakdown: duplicate line %q", line.Name))
	}
	if line.Amount.IsNegative() {
		panic(fmt.Sprintf("breakdown: negative amount %s for %q", line.Amount, line.Name))
	}
	bb.b.index[line.Name] = len(bb.b.lines)
	bb.b.lines = append(bb.b.lines, line)
}

// Lines returns a copy of all lines in display order
func (b ChargeBreakdown) Lines() []ChargeLine {
	out := make([]ChargeLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len returns the number of lines including the total
func (b ChargeBreakdown) Len() int {
	return len(b.lines)
}

// Amount returns the amount of a named line
func (b ChargeBreakdown) Amount(name string) (decimal.Decimal, bool) {
	i, ok := b.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return b.lines[i].Amount, true
}

// TotalLine returns the grand total line
func (b ChargeBreakdown) TotalLine() (ChargeLine, bool) {
	if len(b.lines) == 0 {
		return ChargeLine{}, false
	}
	last := b.lines[len(b.lines)-1]
	return last, last.Kind == LineTotal
}

// Total returns the grand total, zero for an empty breakdown
func (b ChargeBreakdown) Total() decimal.Decimal {
	line, ok := b.TotalLine()
	if !ok {
		return decimal.Zero
	}
	return line.Amount
}

// Visible returns the lines with a non-zero amount
func (b ChargeBreakdown) Visible() []ChargeLine {
	out := make([]ChargeLine, 0, len(b.lines))
	for _, l := range b.lines {
		if !l.Amount.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

// MarshalJSON encodes the breakdown as its ordered line list
func (b ChargeBreakdown) MarshalJSON() ([]byte, error) {
	lines := b.lines
	if lines == nil {
		lines = []ChargeLine{}
	}
	return json.Marshal(lines)
}
