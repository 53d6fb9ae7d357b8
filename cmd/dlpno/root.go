package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dlpno/config"
)

var (
	cfgPath  string
	logLevel string
	logJSON  bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dlpno",
	Short: "Occupied-pair screening for local correlation calculations",
	Long: `dlpno screens occupied orbital pairs by their MP2-level coupling
strength and verifies regression datasets of reference couplings.

Inputs are self-contained molecule records: orbital energies plus the
full two-electron tensor in chemist notation. Outputs are the retained
pair list with its coverage, optionally the full coupling matrix, and
optionally a run manifest snapshotting the numerical contract.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.New()
		if cfgPath != "" {
			if err := cfg.FromFile(cfgPath); err != nil {
				return err
			}
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := cfg.LogLevel()
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		jsonOut := cfg.LogJSON()
		if cmd.Flags().Changed("log-json") {
			jsonOut = logJSON
		}

		var err error
		logger, err = config.NewLogger(os.Stderr, level, jsonOut)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON events")
}
