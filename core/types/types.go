// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// Region identifies a shipping origin corridor
type Region string

const (
	RegionAmericas      Region = "USA/CANADA/SOUTH AMERICA"
	RegionFarEast       Region = "FAREAST/CHINA/MALAYSIA/SINGAPORE/THAILAND"
	RegionOceania       Region = "AUSTRALIA/NEW ZEALAND"
	RegionEurope        Region = "NWC/UK (EUROPE)"
	RegionIndiaPakistan Region = "INDIA & PAKISTAN"
	RegionArabianGulf   Region = "ARABIA GULF/PERSIA"
	RegionSouthAfrica   Region = "SOUTH AFRICA"
)

var allRegions = []Region{
	RegionAmericas,
	RegionFarEast,
	RegionOceania,
	RegionEurope,
	RegionIndiaPakistan,
	RegionArabianGulf,
	RegionSouthAfrica,
}

// AllRegions returns every region in display order
func AllRegions() []Region {
	out := make([]Region, len(allRegions))
	copy(out, allRegions)
	return out
}

// String returns the string representation of the region
func (r Region) String() string {
	return string(r)
}

// IsValid checks if the region is a known corridor
func (r Region) IsValid() bool {
	switch r {
	case RegionAmericas, RegionFarEast, RegionOceania, RegionEurope,
		RegionIndiaPakistan, RegionArabianGulf, RegionSouthAfrica:
		return true
	default:
		return false
	}
}

// ParseRegion matches a corridor name, ignoring case and surrounding space
func ParseRegion(s string) (Region, bool) {
	s = strings.TrimSpace(s)
	for _, r := range allRegions {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// DGClass is the dangerous goods classification of air cargo
type DGClass string

const (
	DangerousGoods DGClass = "DG"
	NotDangerous   DGClass = "NOT"
)

// IsValid checks if the class is known
func (c DGClass) IsValid() bool {
	return c == DangerousGoods || c == NotDangerous
}

// ParseDGClass parses "DG" or "NOT"
func ParseDGClass(s string) (DGClass, bool) {
	c := DGClass(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// AirShipmentType is the air freight billing mode
type AirShipmentType string

const (
	// ShipmentMAWB is a shipment billed on its own master air waybill
	ShipmentMAWB AirShipmentType = "MAWB"

	// ShipmentConso is a consolidated shipment broken down on arrival
	ShipmentConso AirShipmentType = "CONSO"
)

// IsValid checks if the shipment type is known
func (t AirShipmentType) IsValid() bool {
	return t == ShipmentMAWB || t == ShipmentConso
}

// ParseAirShipmentType parses "MAWB" or "CONSO"
func ParseAirShipmentType(s string) (AirShipmentType, bool) {
	t := AirShipmentType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}
