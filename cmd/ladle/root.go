// Root command for the ladle CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

// cfg and logger are initialized by PersistentPreRunE so all subcommands can
// use them.
var (
	cfg    *viper.Viper
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ladle",
	Short: "Ladle loads a recipe dataset into a property-graph store",
	Long: `Ladle reads a tabular recipe dataset from a delimited file and loads it
into a property-graph store, creating Recipe and Ingredient nodes connected
by CONTAINS relationships.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err = newLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ladle.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable per-row debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loadCmd)
}

// newLogger builds the process logger. Logs go to stderr so the load summary
// on stdout stays machine-readable.
func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
