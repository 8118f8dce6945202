// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"port-charges/core/engine"
	"port-charges/core/tariff"
)

// JSONFormatter renders quotes as indented JSON. Zero lines are always kept.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderSea writes a sea shipment quote
func (f *JSONFormatter) RenderSea(w io.Writer, q *engine.SeaQuote) error {
	return encode(w, q)
}

// RenderAir writes an air shipment quote
func (f *JSONFormatter) RenderAir(w io.Writer, q *engine.AirQuote) error {
	return encode(w, q)
}

// RenderTariff writes a rate table
func (f *JSONFormatter) RenderTariff(w io.Writer, entries []tariff.Entry, currency string) error {
	return encode(w, struct {
		Currency string         `json:"currency"`
		Rates    []tariff.Entry `json:"rates"`
	}{currency, entries})
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
