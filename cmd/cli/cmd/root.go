// Package cmd provides the CLI commands for portcharges.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tarifffile "port-charges/adapters/tariff/hcl"
	"port-charges/core/engine"
	"port-charges/core/output"
	"port-charges/core/tariff"
	"port-charges/internal/config"
	"port-charges/internal/logging"
)

// Version is set at build time with -ldflags "-X port-charges/cmd/cli/cmd.Version=..."
var Version = "0.1.0"

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	cfgFile    string
	tariffFile string
	verbose    bool
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "portcharges",
		Short: "Estimate port and shipping charges for cargo cleared in Tanzania",
		Long: `portcharges computes TASAC shipping fees, port and ICD charges for sea
freight, and Swissport handling charges for air freight.

Examples:
  portcharges sea --region "NWC/UK (EUROPE)" --cargo "20FT Standard" --quantity 2 \
    --carry-in 2025-01-06 --carry-out 2025-01-20
  portcharges air --weight 100 --dg NOT --shipment MAWB \
    --carry-in 2025-01-06 --carry-out 2025-01-15
  portcharges tariff --format json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (default is $HOME/.portcharges/config.json)")
	rootCmd.PersistentFlags().StringVar(&g.tariffFile, "tariff", "", "HCL tariff file (default is the built-in TASAC schedule)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSeaCmd())
	rootCmd.AddCommand(newAirCmd())
	rootCmd.AddCommand(newTariffCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(g))

	return rootCmd
}

func initConfig(g *globalOptions) error {
	path := g.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(".env"); err != nil {
		return err
	}
	if g.tariffFile != "" {
		cfg.Tariff.File = g.tariffFile
	}
	if g.verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	// Initialize logging
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// loadRates returns the configured rate table
func loadRates(cfg *config.Config) (*tariff.RateTable, error) {
	if cfg.Tariff.File == "" {
		return tariff.Default(), nil
	}
	t, err := tarifffile.LoadFile(cfg.Tariff.File, tarifffile.WithDefaultCurrency(cfg.Tariff.Currency))
	if err != nil {
		return nil, err
	}
	logging.Debug("Loaded tariff file")
	return t, nil
}

func newEngine() (*engine.Engine, error) {
	rates, err := loadRates(config.Get())
	if err != nil {
		return nil, err
	}
	return engine.New(rates, engine.WithLogger(logging.Named("engine"))), nil
}

// newFormatter resolves the --format flag against the configured default
func newFormatter(format string, showZero bool) (output.Formatter, error) {
	cfg := config.Get()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.New(format, output.Options{ShowZero: showZero || cfg.Output.ShowZero})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portcharges version %s\n", Version)
		},
	}
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(config.Get())
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
