// Package cmd - tariff command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tarifffile "port-charges/adapters/tariff/hcl"
	"port-charges/core/tariff"
	"port-charges/core/types"
	"port-charges/internal/config"
	"port-charges/internal/errors"
)

func newTariffCmd() *cobra.Command {
	var (
		region string
		format string
		export bool
	)

	cmd := &cobra.Command{
		Use:   "tariff",
		Short: "Print the active TASAC rate table",
		Long: `Print the TASAC rate table used for quotes.

With --export the table is written as an HCL tariff file that can be edited
and passed back with --tariff.

Examples:
  portcharges tariff
  portcharges tariff --region "SOUTH AFRICA" --format json
  portcharges tariff --export > tariff.hcl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := loadRates(config.Get())
			if err != nil {
				return err
			}

			if export {
				_, err := cmd.OutOrStdout().Write(tarifffile.Encode(rates))
				return err
			}

			entries := rates.Entries()
			if region != "" {
				r, ok := types.ParseRegion(region)
				if !ok {
					return errors.Input(fmt.Sprintf("unknown region %q (want one of: %s)", region, joinRegions()))
				}
				entries = filterRegion(entries, r)
			}

			f, err := newFormatter(format, false)
			if err != nil {
				return err
			}
			return f.RenderTariff(cmd.OutOrStdout(), entries, rates.Currency())
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "only show one region")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (cli, json)")
	cmd.Flags().BoolVar(&export, "export", false, "write the table as an HCL tariff file")

	return cmd
}

func filterRegion(entries []tariff.Entry, region types.Region) []tariff.Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.Region == region {
			out = append(out, e)
		}
	}
	return out
}
