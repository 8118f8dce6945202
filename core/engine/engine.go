// Package engine provides the quoting API over the charge calculators.
// CLI is a thin wrapper around this engine.
package engine

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"port-charges/core/charges"
	"port-charges/core/types"
	"port-charges/internal/errors"
)

// RateTable is the tariff the engine prices TASAC fees against
type RateTable interface {
	charges.RateLookup
	Currency() string
	Fingerprint() string
}

// Engine composes TASAC fees and port or airport charges into quotes.
// It holds only immutable data and is safe for concurrent use.
type Engine struct {
	rates  RateTable
	logger *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over a rate table
func New(rates RateTable, opts ...Option) *Engine {
	e := &Engine{
		rates:  rates,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rates returns the engine's rate table
func (e *Engine) Rates() RateTable {
	return e.rates
}

// SeaQuote is the priced result of a sea shipment
type SeaQuote struct {
	ID       string          `json:"id"`
	Inputs   types.SeaInputs `json:"inputs"`
	Currency string          `json:"currency"`
	Tariff   string          `json:"tariff"`
	Days     int             `json:"days"`

	// Rate is zero when the table has no entry for the inputs
	Rate     decimal.Decimal    `json:"rate"`
	Unit     types.QuantityUnit `json:"unit"`
	TASACFee decimal.Decimal    `json:"tasac_fee"`

	Port       types.ChargeBreakdown `json:"port_charges"`
	PortTotal  decimal.Decimal       `json:"port_total"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
}

// AirQuote is the priced result of an air shipment
type AirQuote struct {
	ID       string                `json:"id"`
	Inputs   types.AirInputs       `json:"inputs"`
	Currency string                `json:"currency"`
	Days     int                   `json:"days"`
	Charges  types.ChargeBreakdown `json:"charges"`
	Total    decimal.Decimal       `json:"total"`
}

// QuoteSea prices a sea shipment
func (e *Engine) QuoteSea(in types.SeaInputs) (*SeaQuote, error) {
	if !in.Region.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown region %q", in.Region)
	}
	if !in.CargoType.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown cargo type %q", in.CargoType)
	}
	if in.Quantity.IsNegative() {
		return nil, errors.Newf(errors.TypeInput, "quantity must not be negative, got %s", in.Quantity)
	}

	port, days, err := e.portCharges(in)
	if err != nil {
		return nil, err
	}

	rate, err := e.rates.Lookup(in.Region, in.CargoType)
	if err != nil {
		e.logger.Warn("no TASAC rate, charging zero",
			zap.String("region", in.Region.String()),
			zap.String("cargo_type", in.CargoType.String()),
			zap.Error(err))
		rate = decimal.Zero
	}
	fee := charges.TASACFee(e.rates, in.Region, in.CargoType, in.Quantity)

	q := &SeaQuote{
		ID:         seaQuoteID(in, e.rates.Fingerprint()),
		Inputs:     in,
		Currency:   e.rates.Currency(),
		Tariff:     e.rates.Fingerprint(),
		Days:       days,
		Rate:       rate,
		Unit:       in.CargoType.QuantityUnit(),
		TASACFee:   fee,
		Port:       port,
		PortTotal:  port.Total(),
		GrandTotal: fee.Add(port.Total()),
	}

	e.logger.Debug("sea quote",
		zap.String("id", q.ID),
		zap.String("handling", in.CargoType.Handling().String()),
		zap.Int("days", days),
		zap.Stringer("grand_total", q.GrandTotal))
	return q, nil
}

func (e *Engine) portCharges(in types.SeaInputs) (types.ChargeBreakdown, int, error) {
	w := in.Window
	switch in.CargoType.Handling() {
	case types.HandlingBulk:
		return charges.PortChargesForBulk(in.Quantity, w.CarryIn, w.CarryOut)
	case types.HandlingGeneralCargo:
		return charges.PortChargesForGeneralCargo(in.Quantity, w.CarryIn, w.CarryOut)
	case types.HandlingContainer20:
		return charges.PortChargesFor20ft(in.Quantity, w.CarryIn, w.CarryOut)
	case types.HandlingContainer40:
		return charges.PortChargesFor40ft(in.Quantity, w.CarryIn, w.CarryOut)
	default:
		return types.ChargeBreakdown{}, 0, errors.Internal("no port schedule for cargo type", nil).
			WithContext("cargo_type", string(in.CargoType))
	}
}

// QuoteAir prices an air shipment
func (e *Engine) QuoteAir(in types.AirInputs) (*AirQuote, error) {
	if !in.DG.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown DG class %q", in.DG)
	}
	if !in.ShipmentType.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown shipment type %q", in.ShipmentType)
	}
	if in.Weight.IsNegative() {
		return nil, errors.Newf(errors.TypeInput, "weight must not be negative, got %s", in.Weight)
	}

	b, days, err := charges.AirCharges(in.Weight, in.DG, in.Window.CarryIn, in.Window.CarryOut, in.ShipmentType)
	if err != nil {
		return nil, err
	}

	q := &AirQuote{
		ID:       airQuoteID(in),
		Inputs:   in,
		Currency: e.rates.Currency(),
		Days:     days,
		Charges:  b,
		Total:    b.Total(),
	}

	e.logger.Debug("air quote",
		zap.String("id", q.ID),
		zap.Int("days", days),
		zap.Stringer("total", q.Total))
	return q, nil
}

// quoteNamespace scopes name-based quote IDs
var quoteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:port-charges:quote"))

func seaQuoteID(in types.SeaInputs, tariff string) string {
	return quoteID("sea", string(in.Region), string(in.CargoType), in.Quantity.String(),
		in.Window.CarryIn.String(), in.Window.CarryOut.String(), tariff)
}

func airQuoteID(in types.AirInputs) string {
	return quoteID("air", in.Weight.String(), string(in.DG), string(in.ShipmentType),
		in.Window.CarryIn.String(), in.Window.CarryOut.String())
}

func quoteID(parts ...string) string {
	return uuid.NewSHA1(quoteNamespace, []byte(strings.Join(parts, "\x00"))).String()
}
