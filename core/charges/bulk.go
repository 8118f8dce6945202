package charges

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"port-charges/core/types"
	"port-charges/core/window"
)

const (
	LineBasicPortHandling = "Basic Port Handling"
	LineBulkTotal         = "Port Charges for Bulk Cargo"
)

var bulkHandlingPerTon = dec("5")

// PortChargesForBulk prices dry bulk, liquid bulk and petroleum cargo.
// Bulk cargo has no storage schedule; only a flat handling charge per ton applies.
func PortChargesForBulk(tons decimal.Decimal, carryIn, carryOut civil.Date) (types.ChargeBreakdown, int, error) {
	d0, err := window.DaysBetween(carryIn, carryOut)
	if err != nil {
		return types.ChargeBreakdown{}, 0, err
	}

	handling := bulkHandlingPerTon.Mul(tons)
	b := types.NewBreakdownBuilder().
		Charge(LineBasicPortHandling, handling).
		Total(LineBulkTotal, handling)
	return b, d0, nil
}
