package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()

	require.NoError(t, err)
	require.Equal(t, ".", cfg.Store.Dir)
	require.Equal(t, filepath.Join(".", "books.txt"), cfg.BooksPath())
	require.Equal(t, filepath.Join(".", "members.txt"), cfg.MembersPath())
	require.Equal(t, filepath.Join(".", "transactions.log"), cfg.TransactionsPath())
	require.Equal(t, "librarydesk.log", cfg.Log.File)
	require.True(t, cfg.Log.LogController)
	require.True(t, cfg.Log.LogUseCase)
	require.True(t, cfg.Log.LogRepo)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/librarydesk")
	t.Setenv("BOOKS_FILE", "catalog.txt")
	t.Setenv("LOG_FILE", "/var/log/librarydesk.log")
	t.Setenv("LOG_CONTROLLER_ENABLED", "false")

	cfg, err := NewConfig()

	require.NoError(t, err)
	require.Equal(t, filepath.Join("/var/lib/librarydesk", "catalog.txt"), cfg.BooksPath())
	require.Equal(t, filepath.Join("/var/lib/librarydesk", "members.txt"), cfg.MembersPath())
	require.Equal(t, "/var/log/librarydesk.log", cfg.Log.File)
	require.False(t, cfg.Log.LogController)
	require.True(t, cfg.Log.LogUseCase)
	require.True(t, cfg.Log.LogRepo)
}
