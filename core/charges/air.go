package charges

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"port-charges/core/types"
	"port-charges/core/window"
)

// Air line names
const (
	LineAirportAuthority = "Tanzania Airport Authority (TAA)"
	LineDataDischarge    = "Data Discharge Tancis"
	LineDocumentation    = "Documentation"
	LineEquipment        = "Equipment Charges"
	LineHandling         = "Handling Charges"
	LineNotification     = "Notification Charges"
	LineAirStorage       = "General Cargo Storage"
	LineSecurity         = "Security Surcharges"
	LineBreakBulk        = "Break Bulk Charges"
	LineAirTotal         = "Total Swissport Charges"
)

// airFreeStorageDays is the NOT-DG storage grace period
const airFreeStorageDays = 3

// equipmentTier charges Amount for weights below Below kg
type equipmentTier struct {
	Below  decimal.Decimal
	Amount decimal.Decimal
}

// Weights from the top tier's Below upward pay equipmentTop.
var (
	equipmentTiers = []equipmentTier{
		{Below: dec("33"), Amount: dec("0")},
		{Below: dec("51"), Amount: dec("10.5")},
		{Below: dec("501"), Amount: dec("26")},
		{Below: dec("5001"), Amount: dec("67")},
		{Below: dec("10000"), Amount: dec("115")},
	}
	equipmentTop = dec("432")
)

var (
	dgHandlingRate    = dec("0.185")
	dgHandlingMin     = dec("40")
	dgStorageRate     = dec("0.1854")
	dgStorageMin      = dec("40")
	handlingRate      = dec("0.085")
	handlingMin       = dec("22")
	storageRate       = dec("0.0515")
	storageMin        = dec("20")
	dataDischarge     = dec("2")
	airportAuthority  = dec("0.04")
	securityRate      = dec("0.025")
	securityMin       = dec("5")
	mawbDocumentation = dec("20")
	consoBreakBulk    = dec("78")
	notification      = dec("1")
)

// EquipmentCharge returns the weight-tiered equipment charge
func EquipmentCharge(weight decimal.Decimal) decimal.Decimal {
	for _, tier := range equipmentTiers {
		if weight.LessThan(tier.Below) {
			return tier.Amount
		}
	}
	return equipmentTop
}

// AirCharges prices an air shipment handled at the airport cargo terminal.
//
// The airport authority fee is added after VAT, and break bulk is shown but
// not included in the total.
func AirCharges(weight decimal.Decimal, dg types.DGClass, carryIn, carryOut civil.Date, shipment types.AirShipmentType) (types.ChargeBreakdown, int, error) {
	d0, err := window.DaysBetween(carryIn, carryOut)
	if err != nil {
		return types.ChargeBreakdown{}, 0, err
	}

	equipment := EquipmentCharge(weight)

	var handling, storage decimal.Decimal
	if dg == types.DangerousGoods {
		handling = decimal.Max(dgHandlingRate.Mul(weight), dgHandlingMin)
		storage = decimal.Max(dgStorageRate.Mul(weight).Mul(days(d0)), dgStorageMin)
	} else {
		handling = decimal.Max(handlingRate.Mul(weight), handlingMin)
		storage = decimal.Zero
		if d0 >= airFreeStorageDays {
			storage = decimal.Max(storageRate.Mul(weight).Mul(days(d0-airFreeStorageDays)), storageMin)
		}
	}

	taa := airportAuthority.Mul(weight)
	security := decimal.Max(securityRate.Mul(weight), securityMin)

	documentation := decimal.Zero
	breakBulk := decimal.Zero
	if shipment == types.ShipmentMAWB {
		documentation = mawbDocumentation
	} else {
		breakBulk = consoBreakBulk
	}

	taxable := sum(dataDischarge, documentation, equipment, handling, notification, security, storage)
	total := withVAT(taxable).Add(taa)

	b := types.NewBreakdownBuilder().
		Charge(LineAirportAuthority, taa).
		Charge(LineDataDischarge, dataDischarge).
		Charge(LineDocumentation, documentation).
		Charge(LineEquipment, equipment).
		Charge(LineHandling, handling).
		Charge(LineNotification, notification).
		Charge(LineAirStorage, storage).
		Charge(LineSecurity, security).
		Charge(LineBreakBulk, breakBulk).
		Total(LineAirTotal, total)
	return b, d0, nil
}
