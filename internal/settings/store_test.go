package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Load())
	assert.Nil(t, s.Args())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	workspace := t.TempDir()

	s := NewStore(workspace)
	require.NoError(t, s.Load())
	s.SetArgs([]string{"--tb=short", "-v", "-s"})
	require.NoError(t, s.Save())

	reloaded := NewStore(workspace)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"--tb=short", "-v", "-s"}, reloaded.Args())
}

func TestSaveEmptyListRemovesKey(t *testing.T) {
	workspace := t.TempDir()

	s := NewStore(workspace)
	s.SetArgs([]string{"-q"})
	require.NoError(t, s.Save())
	s.SetArgs(nil)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	_, ok := raw[ArgsKey]
	assert.False(t, ok, "empty token list should drop the key")
}

func TestSavePreservesForeignKeys(t *testing.T) {
	workspace := t.TempDir()
	path := filepath.Join(workspace, ".pyflags", "settings.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	seed := `{
  "editor.tabSize": 4,
  "pytest.args": ["-q"],
  "linter": {"enabled": true, "rules": ["E501"]}
}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	s := NewStore(workspace)
	require.NoError(t, s.Load())
	assert.Equal(t, []string{"-q"}, s.Args())

	s.SetArgs([]string{"--headed", "--browser=firefox"})
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.JSONEq(t, `4`, string(raw["editor.tabSize"]))
	assert.JSONEq(t, `{"enabled": true, "rules": ["E501"]}`, string(raw["linter"]))
	assert.JSONEq(t, `["--headed", "--browser=firefox"]`, string(raw[ArgsKey]))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	workspace := t.TempDir()
	path := filepath.Join(workspace, ".pyflags", "settings.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	s := NewStore(workspace)
	err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}

func TestArgsReturnsCopy(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "settings.json"))
	s.SetArgs([]string{"-q"})
	got := s.Args()
	got[0] = "mutated"
	assert.Equal(t, []string{"-q"}, s.Args())
}
