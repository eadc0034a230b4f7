package notesapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRunCommandWithDefaults(t *testing.T) {
	cmd, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	require.IsType(t, &RunCommand{}, cmd)
	require.Equal(t, BackendPostgres, config.StoreBackend)
	require.Equal(t, "8080", config.ServerPort)
	require.False(t, config.ReadOnly)
}

func TestParseMigrateCommand(t *testing.T) {
	cmd, _, err := Parse([]string{"migrate"})
	require.NoError(t, err)
	require.IsType(t, &MigrateCommand{}, cmd)
}

func TestParseStoreBackendFlag(t *testing.T) {
	_, config, err := Parse([]string{"-store", "memory", "run"})
	require.NoError(t, err)
	require.Equal(t, BackendMemory, config.StoreBackend)

	_, config, err = Parse([]string{"-store", "surreal", "run"})
	require.NoError(t, err)
	require.Equal(t, BackendSurreal, config.StoreBackend)
}

func TestParseRejectsInvalidBackend(t *testing.T) {
	_, _, err := Parse([]string{"-store", "mongodb", "run"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid store backend")
}

func TestParseRequiresSubcommand(t *testing.T) {
	_, _, err := Parse([]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "subcommand required")
}

func TestParseRejectsUnknownCommand(t *testing.T) {
	_, _, err := Parse([]string{"serve"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestParseFlagsFillConfig(t *testing.T) {
	_, config, err := Parse([]string{
		"-store", "surreal",
		"-port", "9090",
		"-surrealdb-url", "ws://db:8000/rpc",
		"-surrealdb-ns", "prod",
		"-surrealdb-db", "notes",
		"-read-only",
		"-log-file", "/tmp/notesapi.log",
		"run",
	})
	require.NoError(t, err)
	require.Equal(t, "9090", config.ServerPort)
	require.Equal(t, "ws://db:8000/rpc", config.SurrealDBURL)
	require.Equal(t, "prod", config.SurrealDBNS)
	require.Equal(t, "notes", config.SurrealDBDB)
	require.True(t, config.ReadOnly)
	require.Equal(t, "/tmp/notesapi.log", config.LogPath)
}
