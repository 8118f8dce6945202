// Package types - Cargo classification
package types

import "strings"

// CargoType is the tariff category of sea cargo
type CargoType string

const (
	CargoPetroleum    CargoType = "Petroleum & Products"
	CargoDryBulk      CargoType = "Dry Bulk"
	CargoLiquidBulk   CargoType = "Liquid Bulk"
	CargoGeneral      CargoType = "General Cargo"
	Cargo20FTStandard CargoType = "20FT Standard"
	Cargo40FTStandard CargoType = "40FT Standard"
	Cargo40FTHighCube CargoType = "40FT High Cube"
)

var allCargoTypes = []CargoType{
	CargoPetroleum,
	CargoDryBulk,
	CargoLiquidBulk,
	CargoGeneral,
	Cargo20FTStandard,
	Cargo40FTStandard,
	Cargo40FTHighCube,
}

// AllCargoTypes returns every cargo type in display order
func AllCargoTypes() []CargoType {
	out := make([]CargoType, len(allCargoTypes))
	copy(out, allCargoTypes)
	return out
}

// String returns the string representation
func (c CargoType) String() string {
	return string(c)
}

// IsValid checks if the cargo type is known
func (c CargoType) IsValid() bool {
	return c.Handling() != HandlingUnknown
}

// ParseCargoType matches a cargo type name, ignoring case and surrounding space
func ParseCargoType(s string) (CargoType, bool) {
	s = strings.TrimSpace(s)
	for _, c := range allCargoTypes {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// HandlingClass selects the port charge schedule for a cargo type
type HandlingClass int

const (
	HandlingUnknown HandlingClass = iota
	HandlingBulk
	HandlingGeneralCargo
	HandlingContainer20
	HandlingContainer40
)

// String returns string representation
func (h HandlingClass) String() string {
	switch h {
	case HandlingBulk:
		return "bulk"
	case HandlingGeneralCargo:
		return "general_cargo"
	case HandlingContainer20:
		return "container_20ft"
	case HandlingContainer40:
		return "container_40ft"
	default:
		return "unknown"
	}
}

// Handling returns the port charge schedule that applies to the cargo type
func (c CargoType) Handling() HandlingClass {
	switch c {
	case CargoPetroleum, CargoDryBulk, CargoLiquidBulk:
		return HandlingBulk
	case CargoGeneral:
		return HandlingGeneralCargo
	case Cargo20FTStandard:
		return HandlingContainer20
	case Cargo40FTStandard, Cargo40FTHighCube:
		return HandlingContainer40
	default:
		return HandlingUnknown
	}
}

// QuantityUnit is the unit a cargo quantity is measured in.
// It is a display label only; rates already encode it.
type QuantityUnit string

const (
	UnitContainers  QuantityUnit = "containers"
	UnitFreightTons QuantityUnit = "freight tons"
	UnitTons        QuantityUnit = "tons"
)

// Singular returns the unit name used in "per ..." rate labels
func (u QuantityUnit) Singular() string {
	switch u {
	case UnitContainers:
		return "container"
	case UnitFreightTons:
		return "freight ton"
	default:
		return "ton"
	}
}

// QuantityUnit returns the unit the cargo type is quoted in
func (c CargoType) QuantityUnit() QuantityUnit {
	switch c.Handling() {
	case HandlingContainer20, HandlingContainer40:
		return UnitContainers
	case HandlingGeneralCargo:
		return UnitFreightTons
	default:
		return UnitTons
	}
}
