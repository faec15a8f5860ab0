package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyflags/internal/config"
	"pyflags/internal/history"
	"pyflags/internal/settings"
)

func TestResolveWorkspace(t *testing.T) {
	orig := workspace
	t.Cleanup(func() { workspace = orig })

	workspace = t.TempDir()
	ws, err := resolveWorkspace()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(ws))

	workspace = filepath.Join(t.TempDir(), "missing")
	_, err = resolveWorkspace()
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	workspace = file
	_, err = resolveWorkspace()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestPersistTokensWritesSettingsAndHistory(t *testing.T) {
	ws := t.TempDir()
	cfg := config.DefaultConfig()
	store := settings.NewStoreAt(cfg.ResolveSettingsPath(ws))

	require.NoError(t, persistTokens(ws, cfg, store, []string{"--tb=short", "-q"}))

	reloaded := settings.NewStoreAt(cfg.ResolveSettingsPath(ws))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"--tb=short", "-q"}, reloaded.Args())

	hist, err := history.NewStore(ws)
	require.NoError(t, err)
	defer hist.Close()
	snaps, err := hist.List(0)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, []string{"--tb=short", "-q"}, snaps[0].Tokens)
}

func TestPersistTokensHonorsHistoryDisabled(t *testing.T) {
	ws := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.History.Enabled = false
	store := settings.NewStoreAt(cfg.ResolveSettingsPath(ws))

	require.NoError(t, persistTokens(ws, cfg, store, []string{"-v"}))

	_, err := os.Stat(filepath.Join(ws, ".pyflags", "history.db"))
	assert.True(t, os.IsNotExist(err), "history database should not be created when disabled")
}
