// Package output - Boxed terminal tables
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"port-charges/core/engine"
	"port-charges/core/tariff"
	"port-charges/core/types"
)

const (
	boxTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	boxRule   = "├─────────────────────────────────────────────────────────────────────────┤"
	boxBottom = "└─────────────────────────────────────────────────────────────────────────┘"
)

// CLIFormatter renders quotes as boxed tables
type CLIFormatter struct {
	opts Options
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

type box struct {
	w   io.Writer
	err error
}

func (b *box) line(s string) {
	if b.err == nil {
		_, b.err = fmt.Fprintln(b.w, s)
	}
}

func (b *box) title(s string) {
	b.line(fmt.Sprintf("│ %-71s │", truncate(s, 71)))
}

func (b *box) row(label, value string) {
	b.line(fmt.Sprintf("│ %-50s %20s │", truncate(label, 50), truncate(value, 20)))
}

func (b *box) charges(cb types.ChargeBreakdown, code string, showZero bool) {
	lines := cb.Visible()
	if showZero {
		lines = cb.Lines()
	}
	for _, l := range lines {
		if l.Kind == types.LineTotal {
			continue
		}
		b.row("  "+l.Name, Money(l.Amount, code))
	}
	if total, ok := cb.TotalLine(); ok {
		b.row(total.Name, Money(total.Amount, code))
	}
}

// RenderSea writes a sea shipment quote
func (f *CLIFormatter) RenderSea(w io.Writer, q *engine.SeaQuote) error {
	b := &box{w: w}
	in := q.Inputs

	b.line(boxTop)
	b.title("SEA SHIPMENT CHARGES")
	b.line(boxRule)
	b.row("Quote", truncateID(q.ID))
	b.title("Origin: " + in.Region.String())
	b.row("Cargo type", in.CargoType.String())
	b.row("Quantity", fmt.Sprintf("%s %s", in.Quantity, q.Unit))
	b.row("Storage period", fmt.Sprintf("%d days", q.Days))
	b.row("  Carry-in", in.Window.CarryIn.String())
	b.row("  Carry-out", in.Window.CarryOut.String())
	b.line(boxRule)
	b.title("TASAC SHIPPING FEES")
	b.row(fmt.Sprintf("  Rate per %s", q.Unit.Singular()), Money(q.Rate, q.Currency))
	b.row("Total TASAC charges", Money(q.TASACFee, q.Currency))
	b.line(boxRule)
	b.title("PORT CHARGES")
	b.charges(q.Port, q.Currency, f.opts.ShowZero)
	b.line(boxRule)
	b.row("TASAC shipping fees", Money(q.TASACFee, q.Currency))
	b.row("Port charges", Money(q.PortTotal, q.Currency))
	b.row("GRAND TOTAL", Money(q.GrandTotal, q.Currency))
	b.line(boxBottom)
	return b.err
}

// RenderAir writes an air shipment quote
func (f *CLIFormatter) RenderAir(w io.Writer, q *engine.AirQuote) error {
	b := &box{w: w}
	in := q.Inputs

	b.line(boxTop)
	b.title("AIR SHIPMENT CHARGES")
	b.line(boxRule)
	b.row("Quote", truncateID(q.ID))
	b.row("Weight", fmt.Sprintf("%s kg", in.Weight))
	b.row("Cargo class", string(in.DG))
	b.row("Shipment type", string(in.ShipmentType))
	b.row("Storage period", fmt.Sprintf("%d days", q.Days))
	b.row("  Carry-in", in.Window.CarryIn.String())
	b.row("  Carry-out", in.Window.CarryOut.String())
	b.line(boxRule)
	b.title("CHARGE BREAKDOWN")
	b.charges(q.Charges, q.Currency, f.opts.ShowZero)
	b.line(boxBottom)
	return b.err
}

// RenderTariff writes a rate table grouped by region
func (f *CLIFormatter) RenderTariff(w io.Writer, entries []tariff.Entry, code string) error {
	b := &box{w: w}

	b.line(boxTop)
	b.title("TASAC RATES")
	var region types.Region
	for _, e := range entries {
		if e.Region != region {
			region = e.Region
			b.line(boxRule)
			b.title(region.String())
		}
		b.row(fmt.Sprintf("  %s (per %s)", e.CargoType, e.CargoType.QuantityUnit().Singular()), Money(e.Rate, code))
	}
	if len(entries) == 0 {
		b.line(boxRule)
		b.row("No rates", Money(decimal.Zero, code))
	}
	b.line(boxBottom)
	return b.err
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
