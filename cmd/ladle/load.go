// Load command: the one-shot batch run.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/ladle/internal/loader"
	"github.com/dukaforge/ladle/internal/neo4j"
	"github.com/dukaforge/ladle/internal/sqlite"
	"github.com/dukaforge/ladle/pkg/types"
)

// Load flag values. Empty string means "fall through to env/config/default".
var (
	flagInput         string
	flagBackend       string
	flagStoreURI      string
	flagStoreUser     string
	flagStorePassword string
	flagDatabase      string
	flagDataDir       string
	flagLegacyCreate  bool
	flagDryRun        bool
)

var loadCmd = &cobra.Command{
	Use:   "load [input.csv]",
	Short: "Load a recipe CSV into the graph store",
	Long: `Load reads the input file row by row and, per recipe, writes the Recipe
node and its ingredient CONTAINS edges in two transactions. The run aborts on
the first malformed row or store failure; rows already committed stay
committed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&flagInput, "input", "", "input file (overrides input_path from config)")
	loadCmd.Flags().StringVar(&flagBackend, "backend", "", "storage backend: neo4j or sqlite")
	loadCmd.Flags().StringVar(&flagStoreURI, "store-uri", "", "graph store address, e.g. bolt://localhost:7687")
	loadCmd.Flags().StringVar(&flagStoreUser, "store-user", "", "graph store username")
	loadCmd.Flags().StringVar(&flagStorePassword, "store-password", "", "graph store password")
	loadCmd.Flags().StringVar(&flagDatabase, "database", "", "graph database name (neo4j backend)")
	loadCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "data directory (sqlite backend)")
	loadCmd.Flags().BoolVar(&flagLegacyCreate, "legacy-create", false, "unconditional recipe CREATE; duplicates Recipe nodes on re-run")
	loadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "normalize every row without touching the store")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	storeCfg := resolveStoreConfig(cmd)
	if err := storeCfg.Validate(); err != nil {
		return err
	}

	input := resolveInput(args)
	if input == "" {
		return errors.New("no input file: pass an argument, --input, LADLE_INPUT_PATH, or input_path in the config file")
	}

	// Dry runs never open a store; the loader only normalizes rows.
	var store types.Store
	var opts []loader.Option
	if flagDryRun {
		opts = append(opts, loader.WithDryRun())
	} else {
		var err error
		switch storeCfg.Backend {
		case types.BackendNeo4j:
			store, err = neo4j.Attach(ctx, storeCfg, logger)
		case types.BackendSQLite:
			store, err = sqlite.Attach(storeCfg)
		}
		if err != nil {
			return err
		}
		defer store.Close(ctx)
	}

	res, err := loader.New(store, logger, opts...).Run(ctx, input)
	if err != nil {
		return err
	}

	verb := "loaded"
	if flagDryRun {
		verb = "validated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d recipes (%d ingredient references) in %s [run %s]\n",
		verb, res.Rows, res.IngredientRefs, res.Elapsed.Round(time.Millisecond), res.RunID)
	return nil
}

// resolveStoreConfig applies the flag > env > config file > default
// precedence per option. Viper covers the last three; flags win when set.
func resolveStoreConfig(cmd *cobra.Command) types.Config {
	c := types.Config{
		Backend:       cfg.GetString(cfgKeyBackend),
		StoreURI:      cfg.GetString(cfgKeyStoreURI),
		StoreUser:     cfg.GetString(cfgKeyStoreUser),
		StorePassword: cfg.GetString(cfgKeyStorePassword),
		Database:      cfg.GetString(cfgKeyDatabase),
		DataDir:       cfg.GetString(cfgKeyDataDir),
		LegacyCreate:  cfg.GetBool(cfgKeyLegacyCreate),
	}

	if flagBackend != "" {
		c.Backend = flagBackend
	}
	if flagStoreURI != "" {
		c.StoreURI = flagStoreURI
	}
	if flagStoreUser != "" {
		c.StoreUser = flagStoreUser
	}
	if flagStorePassword != "" {
		c.StorePassword = flagStorePassword
	}
	if flagDatabase != "" {
		c.Database = flagDatabase
	}
	if flagDataDir != "" {
		c.DataDir = flagDataDir
	}
	if cmd.Flags().Changed("legacy-create") {
		c.LegacyCreate = flagLegacyCreate
	}
	return c
}

// resolveInput returns the input path: positional argument > --input flag >
// LADLE_INPUT_PATH env or input_path config key.
func resolveInput(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if flagInput != "" {
		return flagInput
	}
	return cfg.GetString(cfgKeyInputPath)
}
