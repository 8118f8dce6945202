package charges

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"port-charges/core/types"
	"port-charges/core/window"
)

// LCL line names
const (
	LineStorage          = "Storage Charges"
	LineCorridorLevy     = "Corridor Levy Charges"
	LineRemoval          = "Removal Charges"
	LineShoreHandling    = "Shore Handling Charges"
	LineStripping        = "Stripping Charges"
	LineLCLWarehouseRent = "Customs Warehouse Rent"
	LineLCLTotal         = "Port and ICD Charges for LCL shipment"
)

// Warehouse rent starts once chargeable days reach lclRentStart and is
// charged on chargeable days less lclRentOffset.
const (
	lclRentStart  = 21
	lclRentOffset = 14
)

var (
	lclStoragePerDay = dec("1")
	lclCorridorLevy  = dec("0.3")
	lclShoreHandling = dec("7")
	lclStripping     = dec("5.3")
	lclRemoval       = dec("2")
	lclWarehouseRent = dec("0.33")
)

// PortChargesForGeneralCargo prices LCL cargo by volume (cbm). General cargo
// quoted in freight tons uses the same schedule.
//
// Warehouse rent is reported but is not part of the taxed total.
func PortChargesForGeneralCargo(quantity decimal.Decimal, carryIn, carryOut civil.Date) (types.ChargeBreakdown, int, error) {
	d0, err := window.DaysBetween(carryIn, carryOut)
	if err != nil {
		return types.ChargeBreakdown{}, 0, err
	}

	d1 := 0
	removal := decimal.Zero
	rent := decimal.Zero
	if d0 > FreeStorageDays {
		d1 = d0 - FreeStorageDays
		removal = lclRemoval.Mul(quantity)
		if d1 >= lclRentStart {
			rent = lclWarehouseRent.Mul(quantity).Mul(days(d1 - lclRentOffset))
		}
	}

	storage := days(d1).Mul(quantity).Mul(lclStoragePerDay)
	levy := lclCorridorLevy.Mul(quantity)
	shore := lclShoreHandling.Mul(quantity)
	stripping := lclStripping.Mul(quantity)
	total := withVAT(sum(storage, levy, shore, stripping, removal))

	b := types.NewBreakdownBuilder().
		Charge(LineStorage, storage).
		Charge(LineCorridorLevy, levy).
		Charge(LineRemoval, removal).
		Charge(LineShoreHandling, shore).
		Charge(LineStripping, stripping).
		Charge(LineLCLWarehouseRent, rent).
		Total(LineLCLTotal, total)
	return b, d0, nil
}
