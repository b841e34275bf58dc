package types

import "errors"

// Config holds backend selection and connection parameters for a Store.
type Config struct {
	Backend       string `json:"backend" yaml:"backend"`
	StoreURI      string `json:"store_uri" yaml:"store_uri"`
	StoreUser     string `json:"store_user" yaml:"store_user"`
	StorePassword string `json:"store_password" yaml:"store_password"`
	Database      string `json:"database" yaml:"database"`
	DataDir       string `json:"data_dir" yaml:"data_dir"`

	// LegacyCreate restores the original unconditional recipe CREATE,
	// which duplicates Recipe nodes on re-run. Off by default.
	LegacyCreate bool `json:"legacy_create" yaml:"legacy_create"`
}

// Supported backend names.
const (
	BackendNeo4j  = "neo4j"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrStoreURIEmpty  = errors.New("store_uri must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendNeo4j:  true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendNeo4j && c.StoreURI == "" {
		return ErrStoreURIEmpty
	}
	return nil
}
