// Package tariff - Built-in TASAC schedule
package tariff

import (
	"github.com/shopspring/decimal"

	"port-charges/core/types"
)

// DefaultCurrency is the currency of the built-in schedule
const DefaultCurrency = "USD"

// rate columns: petroleum, dry bulk, liquid bulk, general cargo, 20FT, 40FT, 40FT high cube
var defaultSchedule = map[types.Region][7]string{
	types.RegionAmericas:      {"0.43", "0.43", "1.07", "2.49", "49.84", "99.67", "124.59"},
	types.RegionFarEast:       {"0.43", "0.43", "1.07", "2.49", "49.84", "99.67", "124.59"},
	types.RegionOceania:       {"0.43", "0.43", "1.07", "2.49", "49.84", "99.67", "124.59"},
	types.RegionEurope:        {"0.36", "0.36", "0.71", "2.14", "42.72", "85.43", "106.79"},
	types.RegionIndiaPakistan: {"0.43", "0.43", "0.71", "2.14", "42.72", "85.43", "106.79"},
	types.RegionArabianGulf:   {"0.36", "0.36", "0.36", "1.07", "21.36", "42.72", "53.40"},
	types.RegionSouthAfrica:   {"0.36", "0.36", "0.36", "1.07", "21.36", "42.72", "53.40"},
}

var scheduleColumns = [7]types.CargoType{
	types.CargoPetroleum,
	types.CargoDryBulk,
	types.CargoLiquidBulk,
	types.CargoGeneral,
	types.Cargo20FTStandard,
	types.Cargo40FTStandard,
	types.Cargo40FTHighCube,
}

// Default returns the built-in TASAC rate table.
// It panics if the embedded schedule is incomplete, which tests guard against.
func Default() *RateTable {
	b := NewBuilder(DefaultCurrency)
	for region, row := range defaultSchedule {
		for i, cargo := range scheduleColumns {
			b.Set(region, cargo, decimal.RequireFromString(row[i]))
		}
	}
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
