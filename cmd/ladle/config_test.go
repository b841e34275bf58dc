package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "neo4j", v.GetString(cfgKeyBackend))
	assert.Equal(t, "bolt://localhost:7687", v.GetString(cfgKeyStoreURI))
	assert.Equal(t, "neo4j", v.GetString(cfgKeyStoreUser))
	assert.Equal(t, ".ladle-db", v.GetString(cfgKeyDataDir))
	assert.Empty(t, v.GetString(cfgKeyInputPath))
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ladle.yaml")
	yaml := `backend: sqlite
store_uri: bolt://graph.internal:7687
store_password: hunter2
input_path: data/recipes.csv
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	chdir(t, dir)

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", v.GetString(cfgKeyBackend))
	assert.Equal(t, "bolt://graph.internal:7687", v.GetString(cfgKeyStoreURI))
	assert.Equal(t, "hunter2", v.GetString(cfgKeyStorePassword))
	assert.Equal(t, "data/recipes.csv", v.GetString(cfgKeyInputPath))
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ladle.yaml"),
		[]byte("store_uri: bolt://from-file:7687\n"), 0o644))
	chdir(t, dir)
	t.Setenv("LADLE_STORE_URI", "bolt://from-env:7687")

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "bolt://from-env:7687", v.GetString(cfgKeyStoreURI))
}

func TestLoadConfigExplicitFileMissingIsError(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigEnvNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\n"), 0o644))
	t.Setenv("LADLE_CONFIG", path)

	v, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", v.GetString(cfgKeyBackend))
}
