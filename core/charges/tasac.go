package charges

import (
	"github.com/shopspring/decimal"

	"port-charges/core/types"
)

// RateLookup is the part of a rate table TASAC fees need
type RateLookup interface {
	Lookup(region types.Region, cargo types.CargoType) (decimal.Decimal, error)
}

// TASACFee returns rate × quantity. A region and cargo type pair missing from
// the table yields zero rather than an error; use TASACFeeStrict to see the miss.
func TASACFee(rates RateLookup, region types.Region, cargo types.CargoType, quantity decimal.Decimal) decimal.Decimal {
	fee, err := TASACFeeStrict(rates, region, cargo, quantity)
	if err != nil {
		return decimal.Zero
	}
	return fee
}

// TASACFeeStrict is TASACFee with the lookup error returned
func TASACFeeStrict(rates RateLookup, region types.Region, cargo types.CargoType, quantity decimal.Decimal) (decimal.Decimal, error) {
	rate, err := rates.Lookup(region, cargo)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(quantity), nil
}
