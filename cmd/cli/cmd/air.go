// Package cmd - air command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"port-charges/core/types"
	"port-charges/core/window"
	"port-charges/internal/errors"
	"port-charges/internal/logging"
)

type airOptions struct {
	weight   string
	dg       string
	shipment string
	carryIn  string
	carryOut string
	format   string
	showZero bool
}

func newAirCmd() *cobra.Command {
	o := &airOptions{}

	cmd := &cobra.Command{
		Use:   "air",
		Short: "Quote Swissport handling charges for an air shipment",
		Long: `Quote Swissport handling, storage and authority charges for air cargo.

Examples:
  portcharges air --weight 100 --carry-in 2025-01-06 --carry-out 2025-01-15
  portcharges air --weight 1000 --dg DG --shipment CONSO --carry-in 2025-01-06 --carry-out 2025-01-07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := o.inputs()
			if err != nil {
				return err
			}

			e, err := newEngine()
			if err != nil {
				return err
			}
			q, err := e.QuoteAir(in)
			if err != nil {
				return err
			}
			logging.Debug("Air quote computed", zap.String("id", q.ID), zap.String("total", q.Total.String()))

			f, err := newFormatter(o.format, o.showZero)
			if err != nil {
				return err
			}
			return f.RenderAir(cmd.OutOrStdout(), q)
		},
	}

	cmd.Flags().StringVarP(&o.weight, "weight", "w", "", "chargeable weight in kg")
	cmd.Flags().StringVar(&o.dg, "dg", string(types.NotDangerous), "dangerous goods class (DG, NOT)")
	cmd.Flags().StringVar(&o.shipment, "shipment", string(types.ShipmentMAWB), "shipment type (MAWB, CONSO)")
	cmd.Flags().StringVar(&o.carryIn, "carry-in", "", "carry-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.carryOut, "carry-out", "", "carry-out date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (cli, json)")
	cmd.Flags().BoolVar(&o.showZero, "show-zero", false, "show zero-amount charge lines")
	for _, name := range []string{"weight", "carry-in", "carry-out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (o *airOptions) inputs() (types.AirInputs, error) {
	weight, err := parseAmount("weight", o.weight)
	if err != nil {
		return types.AirInputs{}, err
	}
	dg, ok := types.ParseDGClass(o.dg)
	if !ok {
		return types.AirInputs{}, errors.Input(fmt.Sprintf("unknown dangerous goods class %q (want DG or NOT)", o.dg))
	}
	shipment, ok := types.ParseAirShipmentType(o.shipment)
	if !ok {
		return types.AirInputs{}, errors.Input(fmt.Sprintf("unknown shipment type %q (want MAWB or CONSO)", o.shipment))
	}
	w, err := window.Parse(o.carryIn, o.carryOut)
	if err != nil {
		return types.AirInputs{}, err
	}
	return types.AirInputs{Weight: weight, DG: dg, ShipmentType: shipment, Window: w}, nil
}
