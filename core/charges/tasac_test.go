package charges

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-charges/core/tariff"
	"port-charges/core/types"
	"port-charges/internal/errors"
)

func TestTASACFee(t *testing.T) {
	table := tariff.Default()

	tests := []struct {
		name     string
		region   types.Region
		cargo    types.CargoType
		quantity string
		want     string
	}{
		{"containers", types.RegionAmericas, types.Cargo20FTStandard, "3", "149.52"},
		{"freight tons", types.RegionEurope, types.CargoGeneral, "10.5", "22.47"},
		{"bulk tons", types.RegionSouthAfrica, types.CargoDryBulk, "1000", "360"},
		{"high cube", types.RegionArabianGulf, types.Cargo40FTHighCube, "2", "106.8"},
		{"zero quantity", types.RegionOceania, types.CargoPetroleum, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TASACFee(table, tt.region, tt.cargo, dec(tt.quantity))
			assert.True(t, got.Equal(dec(tt.want)), "want %s, got %s", tt.want, got)
		})
	}
}

func TestTASACFeeMissIsZero(t *testing.T) {
	table := tariff.Default()

	got := TASACFee(table, types.Region("ATLANTIS"), types.CargoDryBulk, dec("10"))
	assert.True(t, got.IsZero())

	_, err := TASACFeeStrict(table, types.Region("ATLANTIS"), types.CargoDryBulk, dec("10"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func FuzzTASACFeeIsLinear(f *testing.F) {
	f.Add(uint8(0), uint32(100), uint32(250))
	f.Add(uint8(17), uint32(1), uint32(0))
	f.Add(uint8(48), uint32(99999), uint32(12345))

	table := tariff.Default()
	entries := table.Entries()

	f.Fuzz(func(t *testing.T, pick uint8, q1, q2 uint32) {
		e := entries[int(pick)%len(entries)]
		a := decimal.New(int64(q1), -2)
		b := decimal.New(int64(q2), -2)

		whole := TASACFee(table, e.Region, e.CargoType, a.Add(b))
		parts := TASACFee(table, e.Region, e.CargoType, a).Add(TASACFee(table, e.Region, e.CargoType, b))
		if !whole.Equal(parts) {
			t.Fatalf("%s: fee(%s+%s)=%s, fee(%s)+fee(%s)=%s", e.Key, a, b, whole, a, b, parts)
		}
	})
}
