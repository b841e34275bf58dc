// Config loading for the ladle CLI. Every option is independently
// overridable: flag > LADLE_* environment variable > config file > default.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dukaforge/ladle/pkg/types"
)

const (
	configFileName = "ladle"
	configFileType = "yaml"

	// Recognized config keys.
	cfgKeyBackend       = "backend"
	cfgKeyStoreURI      = "store_uri"
	cfgKeyStoreUser     = "store_user"
	cfgKeyStorePassword = "store_password"
	cfgKeyDatabase      = "database"
	cfgKeyDataDir       = "data_dir"
	cfgKeyInputPath     = "input_path"
	cfgKeyLegacyCreate  = "legacy_create"
)

// loadConfig reads the config file using Viper. An explicitly named file that
// does not exist is an error; a missing default ladle.yaml is not. The
// LADLE_CONFIG environment variable names the file when no --config flag is
// given.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendNeo4j)
	v.SetDefault(cfgKeyStoreURI, "bolt://localhost:7687")
	v.SetDefault(cfgKeyStoreUser, "neo4j")
	v.SetDefault(cfgKeyDataDir, ".ladle-db")

	v.SetEnvPrefix("LADLE")
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("LADLE_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing ladle.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
