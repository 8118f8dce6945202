package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-charges/core/types"
	"port-charges/internal/errors"
)

func TestDefaultTableIsComplete(t *testing.T) {
	table := Default()

	entries := table.Entries()
	assert.Len(t, entries, len(types.AllRegions())*len(types.AllCargoTypes()))
	for _, e := range entries {
		assert.False(t, e.Rate.IsNegative(), e.Key.String())
	}
	assert.Equal(t, "USD", table.Currency())
	assert.Len(t, table.Fingerprint(), 16)
}

func TestDefaultLookup(t *testing.T) {
	table := Default()

	tests := []struct {
		region types.Region
		cargo  types.CargoType
		want   string
	}{
		{types.RegionAmericas, types.CargoGeneral, "2.49"},
		{types.RegionFarEast, types.Cargo40FTHighCube, "124.59"},
		{types.RegionEurope, types.CargoLiquidBulk, "0.71"},
		{types.RegionIndiaPakistan, types.CargoPetroleum, "0.43"},
		{types.RegionArabianGulf, types.Cargo40FTHighCube, "53.40"},
		{types.RegionSouthAfrica, types.Cargo20FTStandard, "21.36"},
	}

	for _, tt := range tests {
		t.Run(tt.region.String()+"/"+tt.cargo.String(), func(t *testing.T) {
			rate, err := table.Lookup(tt.region, tt.cargo)
			require.NoError(t, err)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.want)), "got %s", rate)
		})
	}
}

func TestLookupMissReturnsNotFound(t *testing.T) {
	_, err := Default().Lookup(types.Region("MARS"), types.CargoDryBulk)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestEntriesOrder(t *testing.T) {
	entries := Default().Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, types.RegionAmericas, entries[0].Region)
	assert.Equal(t, types.CargoPetroleum, entries[0].CargoType)
	assert.Equal(t, types.RegionSouthAfrica, entries[len(entries)-1].Region)
	assert.Equal(t, types.Cargo40FTHighCube, entries[len(entries)-1].CargoType)
}

func TestBuilderRejectsIncompleteTable(t *testing.T) {
	_, err := NewBuilder("USD").
		Set(types.RegionEurope, types.CargoDryBulk, decimal.RequireFromString("0.36")).
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
	assert.Contains(t, err.Error(), "missing rate for SOUTH AFRICA/40FT High Cube")
}

func TestBuilderRejectsBadEntries(t *testing.T) {
	b := fullBuilder()
	b.Set(types.Region("MARS"), types.CargoDryBulk, decimal.NewFromInt(1))
	b.Set(types.RegionEurope, types.CargoType("Reefer"), decimal.NewFromInt(1))
	b.Set(types.RegionEurope, types.CargoDryBulk, decimal.NewFromInt(1))

	_, err := b.Build()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `unknown region "MARS"`)
	assert.Contains(t, msg, `unknown cargo type "Reefer"`)
	assert.Contains(t, msg, "duplicate rate for NWC/UK (EUROPE)/Dry Bulk")
}

func TestBuilderRejectsNegativeRate(t *testing.T) {
	b := NewBuilder("USD")
	b.Set(types.RegionEurope, types.CargoDryBulk, decimal.NewFromInt(-1))
	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative rate")
}

func TestBuilderRequiresCurrency(t *testing.T) {
	b := fullBuilder()
	b.currency = " "
	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency is required")
}

func TestFingerprintTracksRates(t *testing.T) {
	a, err := fullBuilder().Build()
	require.NoError(t, err)
	b, err := fullBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	changed := NewBuilder("USD")
	for _, r := range types.AllRegions() {
		for _, c := range types.AllCargoTypes() {
			rate := decimal.NewFromInt(1)
			if r == types.RegionEurope && c == types.CargoGeneral {
				rate = decimal.NewFromInt(2)
			}
			changed.Set(r, c, rate)
		}
	}
	ct, err := changed.Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), ct.Fingerprint())
}

func fullBuilder() *Builder {
	b := NewBuilder("USD")
	for _, r := range types.AllRegions() {
		for _, c := range types.AllCargoTypes() {
			b.Set(r, c, decimal.NewFromInt(1))
		}
	}
	return b
}
