package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teaCSV = `id,name,description,ingredients,minutes,steps,nutrition
1,Tea,a hot drink,"['water','tea leaves']",5,"['boil water','steep leaves']","[10.0, 0.0]"
`

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values persist across Execute calls; reset the load flags so each
	// test starts clean.
	flagInput, flagBackend, flagStoreURI, flagStoreUser = "", "", "", ""
	flagStorePassword, flagDatabase, flagDataDir = "", "", ""
	flagLegacyCreate, flagDryRun = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ladle "+version)
}

func TestLoadCommandSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "recipes.csv")
	require.NoError(t, os.WriteFile(input, []byte(teaCSV), 0o644))
	chdir(t, dir)

	out, err := execute(t, "load", input, "--backend", "sqlite", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 1 recipes (2 ingredient references)")

	// The database file exists under the data dir.
	_, statErr := os.Stat(filepath.Join(dir, "ladle.db"))
	assert.NoError(t, statErr)
}

func TestLoadCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "recipes.csv")
	require.NoError(t, os.WriteFile(input, []byte(teaCSV), 0o644))
	chdir(t, dir)

	out, err := execute(t, "load", input, "--backend", "sqlite", "--data-dir", dir, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "validated 1 recipes")

	// Dry run must not create the database file.
	_, statErr := os.Stat(filepath.Join(dir, "ladle.db"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadCommandNoInput(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "load", "--backend", "sqlite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input file")
}

func TestLoadCommandUnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "load", "whatever.csv", "--backend", "postgres")
	require.Error(t, err)
}
