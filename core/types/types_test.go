package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	r, ok := ParseRegion("  nwc/uk (europe) ")
	require.True(t, ok)
	assert.Equal(t, RegionEurope, r)

	_, ok = ParseRegion("ANTARCTICA")
	assert.False(t, ok)

	assert.Len(t, AllRegions(), 7)
	for _, r := range AllRegions() {
		assert.True(t, r.IsValid(), r)
	}
}

func TestCargoHandlingIsExhaustive(t *testing.T) {
	tests := []struct {
		cargo    CargoType
		handling HandlingClass
		unit     QuantityUnit
	}{
		{CargoPetroleum, HandlingBulk, UnitTons},
		{CargoDryBulk, HandlingBulk, UnitTons},
		{CargoLiquidBulk, HandlingBulk, UnitTons},
		{CargoGeneral, HandlingGeneralCargo, UnitFreightTons},
		{Cargo20FTStandard, HandlingContainer20, UnitContainers},
		{Cargo40FTStandard, HandlingContainer40, UnitContainers},
		{Cargo40FTHighCube, HandlingContainer40, UnitContainers},
	}

	require.Len(t, AllCargoTypes(), len(tests))
	for _, tt := range tests {
		t.Run(string(tt.cargo), func(t *testing.T) {
			assert.Equal(t, tt.handling, tt.cargo.Handling())
			assert.Equal(t, tt.unit, tt.cargo.QuantityUnit())
			assert.True(t, tt.cargo.IsValid())
		})
	}

	assert.Equal(t, HandlingUnknown, CargoType("45FT Reefer").Handling())
	assert.False(t, CargoType("45FT Reefer").IsValid())
}

func TestParseAirFlags(t *testing.T) {
	dg, ok := ParseDGClass("dg")
	assert.True(t, ok)
	assert.Equal(t, DangerousGoods, dg)

	_, ok = ParseDGClass("maybe")
	assert.False(t, ok)

	st, ok := ParseAirShipmentType("conso")
	assert.True(t, ok)
	assert.Equal(t, ShipmentConso, st)

	_, ok = ParseAirShipmentType("HAWB")
	assert.False(t, ok)
}

func TestBreakdownKeepsOrderAndTotal(t *testing.T) {
	b := NewBreakdownBuilder().
		Charge("Storage Charges", decimal.NewFromInt(10)).
		Charge("Removal Charges", decimal.Zero).
		Total("Grand", decimal.NewFromInt(10))

	lines := b.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Storage Charges", lines[0].Name)
	assert.Equal(t, "Removal Charges", lines[1].Name)
	assert.Equal(t, LineTotal, lines[2].Kind)
	assert.True(t, b.Total().Equal(decimal.NewFromInt(10)))

	amount, ok := b.Amount("Removal Charges")
	assert.True(t, ok)
	assert.True(t, amount.IsZero())

	_, ok = b.Amount("Missing")
	assert.False(t, ok)

	visible := b.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "Storage Charges", visible[0].Name)
	assert.Equal(t, "Grand", visible[1].Name)
}

func TestBreakdownRejectsDuplicatesAndNegatives(t *testing.T) {
	assert.Panics(t, func() {
		NewBreakdownBuilder().
			Charge("Storage Charges", decimal.Zero).
			Charge("Storage Charges", decimal.Zero)
	})
	assert.Panics(t, func() {
		NewBreakdownBuilder().Charge("Storage Charges", decimal.NewFromInt(-1))
	})
}

func TestEmptyBreakdown(t *testing.T) {
	var b ChargeBreakdown
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.Total().IsZero())

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestBreakdownJSONIsOrdered(t *testing.T) {
	b := NewBreakdownBuilder().
		Charge("B", decimal.RequireFromString("1.5")).
		Charge("A", decimal.RequireFromString("2")).
		Total("T", decimal.RequireFromString("3.5"))

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name":"B","amount":"1.5","kind":"charge"},{"name":"A","amount":"2","kind":"charge"},{"name":"T","amount":"3.5","kind":"total"}]`,
		string(data))
}
