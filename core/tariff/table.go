// Package tariff - TASAC rate table
// Tables are built once, validated for completeness, and never modified.
package tariff

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"port-charges/core/types"
	"port-charges/internal/errors"
)

// Key identifies a single rate
type Key struct {
	Region    types.Region    `json:"region"`
	CargoType types.CargoType `json:"cargo_type"`
}

// String returns a string representation for lookup errors
func (k Key) String() string {
	return string(k.Region) + "/" + string(k.CargoType)
}

// Entry is a rate with its key
type Entry struct {
	Key
	Rate decimal.Decimal `json:"rate"`
}

// RateTable maps every region and cargo type to a TASAC rate.
// The rate is per container, per freight ton or per ton depending on cargo type.
type RateTable struct {
	currency    string
	rates       map[Key]decimal.Decimal
	fingerprint string
}

// Lookup returns the rate for a region and cargo type
func (t *RateTable) Lookup(region types.Region, cargo types.CargoType) (decimal.Decimal, error) {
	key := Key{Region: region, CargoType: cargo}
	rate, ok := t.rates[key]
	if !ok {
		return decimal.Zero, errors.NotFound("TASAC rate", key.String())
	}
	return rate, nil
}

// Currency returns the ISO currency code rates are quoted in
func (t *RateTable) Currency() string {
	return t.currency
}

// Fingerprint is a content hash identifying the table's rates
func (t *RateTable) Fingerprint() string {
	return t.fingerprint
}

// Entries returns all rates, regions and cargo types in display order
func (t *RateTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.rates))
	for _, r := range types.AllRegions() {
		for _, c := range types.AllCargoTypes() {
			key := Key{Region: r, CargoType: c}
			if rate, ok := t.rates[key]; ok {
				out = append(out, Entry{Key: key, Rate: rate})
			}
		}
	}
	return out
}

// Builder assembles a RateTable
type Builder struct {
	currency string
	rates    map[Key]decimal.Decimal
	problems []string
}

// NewBuilder creates a builder for rates in the given currency
func NewBuilder(currency string) *Builder {
	return &Builder{
		currency: currency,
		rates:    make(map[Key]decimal.Decimal),
	}
}

// Set records a rate. Problems are reported by Build.
func (b *Builder) Set(region types.Region, cargo types.CargoType, rate decimal.Decimal) *Builder {
	key := Key{Region: region, CargoType: cargo}
	switch {
	case !region.IsValid():
		b.problems = append(b.problems, fmt.Sprintf("unknown region %q", region))
	case !cargo.IsValid():
		b.problems = append(b.problems, fmt.Sprintf("unknown cargo type %q", cargo))
	case rate.IsNegative():
		b.problems = append(b.problems, fmt.Sprintf("negative rate %s for %s", rate, key))
	default:
		if _, dup := b.rates[key]; dup {
			b.problems = append(b.problems, fmt.Sprintf("duplicate rate for %s", key))
			return b
		}
		b.rates[key] = rate
	}
	return b
}

// Build validates completeness and seals the table
func (b *Builder) Build() (*RateTable, error) {
	problems := append([]string(nil), b.problems...)
	if strings.TrimSpace(b.currency) == "" {
		problems = append(problems, "currency is required")
	}
	for _, r := range types.AllRegions() {
		for _, c := range types.AllCargoTypes() {
			key := Key{Region: r, CargoType: c}
			if _, ok := b.rates[key]; !ok {
				problems = append(problems, fmt.Sprintf("missing rate for %s", key))
			}
		}
	}
	if len(problems) > 0 {
		return nil, errors.Newf(errors.TypeConfig, "invalid rate table: %s", strings.Join(problems, "; ")).
			WithContext("problems", problems)
	}

	rates := make(map[Key]decimal.Decimal, len(b.rates))
	for k, v := range b.rates {
		rates[k] = v
	}
	t := &RateTable{currency: strings.ToUpper(b.currency), rates: rates}
	t.fingerprint = t.computeFingerprint()
	return t, nil
}

func (t *RateTable) computeFingerprint() string {
	h := sha256.New()
	h.Write([]byte(t.currency))
	h.Write([]byte{0})
	for _, e := range t.Entries() {
		h.Write([]byte(e.Key.String()))
		h.Write([]byte{0})
		h.Write([]byte(e.Rate.String()))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
