// Package hcl loads TASAC rate tables from HCL files.
//
// A tariff file carries an optional currency and one region block per origin:
//
//	currency = "USD"
//
//	region "NWC/UK (EUROPE)" {
//	  rates = {
//	    "Dry Bulk"      = 0.36
//	    "20FT Standard" = 42.72
//	  }
//	}
//
// Every region must list a rate for every cargo type.
package hcl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"port-charges/core/tariff"
	"port-charges/core/types"
	"port-charges/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "currency"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "region", LabelNames: []string{"name"}},
	},
}

var regionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "rates", Required: true},
	},
}

// Option configures parsing
type Option func(*options)

type options struct {
	currency string
}

// WithDefaultCurrency sets the currency used when a file has no currency attribute
func WithDefaultCurrency(code string) Option {
	return func(o *options) {
		if code != "" {
			o.currency = code
		}
	}
}

// LoadFile reads and parses a tariff file
func LoadFile(path string, opts ...Option) (*tariff.RateTable, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read tariff file %s", path).
			WithContext("file", path)
	}
	return Parse(src, path, opts...)
}

// Parse builds a rate table from HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string, opts ...Option) (*tariff.RateTable, error) {
	o := options{currency: tariff.DefaultCurrency}
	for _, opt := range opts {
		opt(&o)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags, filename)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags, filename)
	}

	currency := o.currency
	if attr, ok := content.Attributes["currency"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diagError(diags, filename)
		}
		if val.IsNull() || !val.Type().Equals(cty.String) {
			return nil, rangeError(attr.Range, "currency must be a string")
		}
		currency = val.AsString()
	}

	b := tariff.NewBuilder(currency)
	for _, block := range content.Blocks {
		region, ok := types.ParseRegion(block.Labels[0])
		if !ok {
			return nil, rangeError(block.LabelRanges[0], fmt.Sprintf("unknown region %q", block.Labels[0]))
		}
		if err := loadRegion(b, region, block, filename); err != nil {
			return nil, err
		}
	}

	t, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "invalid tariff file %s", filename).
			WithContext("file", filename)
	}
	return t, nil
}

func loadRegion(b *tariff.Builder, region types.Region, block *hcl.Block, filename string) error {
	content, diags := block.Body.Content(regionSchema)
	if diags.HasErrors() {
		return diagError(diags, filename)
	}

	attr := content.Attributes["rates"]
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diagError(diags, filename)
	}
	if val.IsNull() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return rangeError(attr.Range, "rates must be an object of cargo type to rate")
	}

	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		cargo, ok := types.ParseCargoType(name)
		if !ok {
			return rangeError(attr.Range, fmt.Sprintf("unknown cargo type %q in region %q", name, region))
		}
		rate, err := toDecimal(v)
		if err != nil {
			return rangeError(attr.Range, fmt.Sprintf("%s/%s: %v", region, cargo, err))
		}
		b.Set(region, cargo, rate)
	}
	return nil
}

// toDecimal converts through the exact big.Float text so 0.43 stays 0.43
func toDecimal(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || !v.IsKnown() {
		return decimal.Zero, fmt.Errorf("rate is not set")
	}
	if !v.Type().Equals(cty.Number) {
		return decimal.Zero, fmt.Errorf("rate must be a number, got %s", v.Type().FriendlyName())
	}
	d, err := decimal.NewFromString(v.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("rate must not be negative, got %s", d)
	}
	return d, nil
}

func diagError(diags hcl.Diagnostics, filename string) error {
	err := errors.Parsing("failed to parse tariff file", diags).
		WithContext("file", filename)
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			return err.WithContext("line", d.Subject.Start.Line)
		}
	}
	return err
}

func rangeError(r hcl.Range, message string) error {
	return errors.Newf(errors.TypeParsing, "%s: %s", r, message).
		WithContext("file", r.Filename).
		WithContext("line", r.Start.Line)
}

// Encode writes a rate table in the format Parse reads
func Encode(t *tariff.RateTable) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("currency", cty.StringVal(t.Currency()))

	byRegion := make(map[types.Region]map[string]cty.Value)
	for _, e := range t.Entries() {
		if byRegion[e.Region] == nil {
			byRegion[e.Region] = make(map[string]cty.Value)
		}
		byRegion[e.Region][string(e.CargoType)] = cty.MustParseNumberVal(e.Rate.String())
	}

	for _, r := range types.AllRegions() {
		rates, ok := byRegion[r]
		if !ok {
			continue
		}
		body.AppendNewline()
		block := body.AppendNewBlock("region", []string{string(r)})
		block.Body().SetAttributeValue("rates", cty.ObjectVal(rates))
	}
	return f.Bytes()
}
