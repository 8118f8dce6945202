// Package cmd - sea command
package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"port-charges/core/types"
	"port-charges/core/window"
	"port-charges/internal/errors"
	"port-charges/internal/logging"
)

type seaOptions struct {
	region   string
	cargo    string
	quantity string
	carryIn  string
	carryOut string
	format   string
	showZero bool
}

func newSeaCmd() *cobra.Command {
	o := &seaOptions{}

	cmd := &cobra.Command{
		Use:   "sea",
		Short: "Quote TASAC fees and port charges for a sea shipment",
		Long: `Quote TASAC shipping fees and port charges for sea cargo.

Quantity is a container count for container cargo, freight tons (cbm) for
general cargo and tons for bulk cargo.

Regions:
  ` + joinRegions() + `

Cargo types:
  ` + joinCargoTypes(),
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
			q, err := e.QuoteSea(in)
			if err != nil {
				return err
			}
			logging.Debug("Sea quote computed", zap.String("id", q.ID), zap.String("grand_total", q.GrandTotal.String()))

			f, err := newFormatter(o.format, o.showZero)
			if err != nil {
				return err
			}
			return f.RenderSea(cmd.OutOrStdout(), q)
		},
	}

	cmd.Flags().StringVarP(&o.region, "region", "r", "", "region of origin")
	cmd.Flags().StringVarP(&o.cargo, "cargo", "c", "", "cargo type")
	cmd.Flags().StringVarP(&o.quantity, "quantity", "q", "", "containers, freight tons or tons")
	cmd.Flags().StringVar(&o.carryIn, "carry-in", "", "carry-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.carryOut, "carry-out", "", "carry-out date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (cli, json)")
	cmd.Flags().BoolVar(&o.showZero, "show-zero", false, "show zero-amount charge lines")
	for _, name := range []string{"region", "cargo", "quantity", "carry-in", "carry-out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (o *seaOptions) inputs() (types.SeaInputs, error) {
	region, ok := types.ParseRegion(o.region)
	if !ok {
		return types.SeaInputs{}, errors.Input(fmt.Sprintf("unknown region %q (want one of: %s)", o.region, joinRegions()))
	}
	cargo, ok := types.ParseCargoType(o.cargo)
	if !ok {
		return types.SeaInputs{}, errors.Input(fmt.Sprintf("unknown cargo type %q (want one of: %s)", o.cargo, joinCargoTypes()))
	}
	quantity, err := parseAmount("quantity", o.quantity)
	if err != nil {
		return types.SeaInputs{}, err
	}
	w, err := window.Parse(o.carryIn, o.carryOut)
	if err != nil {
		return types.SeaInputs{}, err
	}
	return types.SeaInputs{Region: region, CargoType: cargo, Quantity: quantity, Window: w}, nil
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "invalid %s %q", name, s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.Input(fmt.Sprintf("%s must not be negative, got %s", name, d))
	}
	return d, nil
}

func joinRegions() string {
	names := make([]string, 0, 7)
	for _, r := range types.AllRegions() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func joinCargoTypes() string {
	names := make([]string, 0, 7)
	for _, c := range types.AllCargoTypes() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
