// Package types - Shipment inputs
package types

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// StorageWindow is the period cargo spends at the port or airport.
// CarryOut must not be before CarryIn.
type StorageWindow struct {
	CarryIn  civil.Date `json:"carry_in"`
	CarryOut civil.Date `json:"carry_out"`
}

// SeaInputs describes a sea shipment to quote
type SeaInputs struct {
	Region    Region          `json:"region"`
	CargoType CargoType       `json:"cargo_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Window    StorageWindow   `json:"window"`
}

// AirInputs describes an air shipment to quote
type AirInputs struct {
	// Weight is the chargeable weight in kg
	Weight       decimal.Decimal `json:"weight"`
	DG           DGClass         `json:"dg"`
	ShipmentType AirShipmentType `json:"shipment_type"`
	Window       StorageWindow   `json:"window"`
}
