package charges

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"port-charges/core/types"
	"port-charges/core/window"
)

// Container line names
const (
	LineCustomsVerification    = "Customs Verification Charges"
	LineICDHandling            = "ICD Handling Charges"
	LineContainerTransfer      = "Container Transfer Charges"
	LineContainerWarehouseRent = "Customs Warehouse Rent Charges"
)

// Storage is charged at PerDay1 for the first tierOneDays chargeable days
// and at PerDay2 after that.
const (
	tierOneDays    = 10
	tierOneLastDay = FreeStorageDays + tierOneDays
)

var containerRentRate = dec("0.33")

// ContainerProfile holds the per-container constants of a container size
type ContainerProfile struct {
	Name string

	PerDay1     decimal.Decimal
	PerDay2     decimal.Decimal
	RemovalBase decimal.Decimal

	RentUnit      decimal.Decimal
	RentOffset    int
	RentThreshold int

	ShoreHandling       decimal.Decimal
	CorridorLevy        decimal.Decimal
	CustomsVerification decimal.Decimal
	ICDHandling         decimal.Decimal
	ContainerTransfer   decimal.Decimal

	// EmptyContainerDeposit is carried for reference and never charged
	EmptyContainerDeposit decimal.Decimal
}

// TotalLine is the name of the profile's grand total line
func (p ContainerProfile) TotalLine() string {
	return "Port and ICD Charges for " + p.Name + " Container"
}

var profile20FT = ContainerProfile{
	Name:                  "20FT",
	PerDay1:               dec("20"),
	PerDay2:               dec("40"),
	RemovalBase:           dec("100"),
	RentUnit:              dec("36"),
	RentOffset:            14,
	RentThreshold:         21,
	ShoreHandling:         dec("79"),
	CorridorLevy:          dec("6"),
	CustomsVerification:   dec("70"),
	ICDHandling:           dec("90"),
	ContainerTransfer:     dec("65"),
	EmptyContainerDeposit: dec("75000"),
}

var profile40FT = ContainerProfile{
	Name:                  "40FT",
	PerDay1:               dec("40"),
	PerDay2:               dec("80"),
	RemovalBase:           dec("150"),
	RentUnit:              dec("72"),
	RentOffset:            21,
	RentThreshold:         21,
	ShoreHandling:         dec("119"),
	CorridorLevy:          dec("12"),
	CustomsVerification:   dec("140"),
	ICDHandling:           dec("140"),
	ContainerTransfer:     dec("65"),
	EmptyContainerDeposit: dec("150000"),
}

// Profile20FT returns the 20-foot container schedule
func Profile20FT() ContainerProfile {
	return profile20FT
}

// Profile40FT returns the 40-foot container schedule, standard and high cube alike
func Profile40FT() ContainerProfile {
	return profile40FT
}

// PortChargesFor20ft prices 20-foot containers
func PortChargesFor20ft(containers decimal.Decimal, carryIn, carryOut civil.Date) (types.ChargeBreakdown, int, error) {
	return ContainerCharges(profile20FT, containers, carryIn, carryOut)
}

// PortChargesFor40ft prices 40-foot containers
func PortChargesFor40ft(containers decimal.Decimal, carryIn, carryOut civil.Date) (types.ChargeBreakdown, int, error) {
	return ContainerCharges(profile40FT, containers, carryIn, carryOut)
}

// ContainerCharges applies a container profile to a storage window.
//
// Storage and removal already include VAT. The fixed handling lines are shown
// before VAT and taxed in the total. Warehouse rent is not part of the total.
func ContainerCharges(p ContainerProfile, containers decimal.Decimal, carryIn, carryOut civil.Date) (types.ChargeBreakdown, int, error) {
	d0, err := window.DaysBetween(carryIn, carryOut)
	if err != nil {
		return types.ChargeBreakdown{}, 0, err
	}

	storage := decimal.Zero
	removal := decimal.Zero
	rent := decimal.Zero

	switch {
	case d0 <= FreeStorageDays:
	case d0 <= tierOneLastDay:
		daily := withVAT(days(d0 - FreeStorageDays).Mul(p.PerDay1))
		storage = daily.Mul(containers)
		removal = withVAT(p.RemovalBase.Mul(containers))
	default:
		extra := d0 - FreeStorageDays - tierOneDays
		tier1 := withVAT(days(tierOneDays).Mul(p.PerDay1))
		tier2 := withVAT(days(extra).Mul(p.PerDay2))
		storage = tier1.Add(tier2).Mul(containers)
		removal = withVAT(p.RemovalBase.Mul(containers))
		if d0 > p.RentThreshold {
			rent = containerRentRate.Mul(p.RentUnit).Mul(days(d0 - p.RentOffset)).Mul(containers)
		}
	}

	shore := p.ShoreHandling.Mul(containers)
	levy := p.CorridorLevy.Mul(containers)
	customs := p.CustomsVerification.Mul(containers)
	icd := p.ICDHandling.Mul(containers)
	transfer := p.ContainerTransfer.Mul(containers)

	handling := withVAT(sum(shore, levy, customs, icd, transfer))
	total := sum(handling, storage, removal)

	b := types.NewBreakdownBuilder().
		Charge(LineStorage, storage).
		Charge(LineRemoval, removal).
		Charge(LineShoreHandling, shore).
		Charge(LineCustomsVerification, customs).
		Charge(LineCorridorLevy, levy).
		Charge(LineICDHandling, icd).
		Charge(LineContainerTransfer, transfer).
		Charge(LineContainerWarehouseRent, rent).
		Total(p.TotalLine(), total)
	return b, d0, nil
}
