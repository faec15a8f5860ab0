// Package settings persists the pytest argument list in the workspace
// settings file. The file is plain JSON; this package owns only the
// "pytest.args" key and carries every other top-level key through a
// load/save cycle untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ArgsKey is the namespaced settings key holding the token list.
const ArgsKey = "pytest.args"

const (
	settingsDir  = ".pyflags"
	settingsFile = "settings.json"
)

// Store handles loading and saving the workspace settings file.
type Store struct {
	mu     sync.RWMutex
	path   string
	args   []string
	others map[string]json.RawMessage
}

// NewStore creates a store for the given workspace, using the default
// settings location under .pyflags/.
func NewStore(workspace string) *Store {
	return NewStoreAt(filepath.Join(workspace, settingsDir, settingsFile))
}

// NewStoreAt creates a store over an explicit settings file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file is not an error; it loads as
// an empty token list.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.args = nil
			s.others = nil
			return nil
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	var tokens []string
	if v, ok := raw[ArgsKey]; ok {
		if err := json.Unmarshal(v, &tokens); err != nil {
			return fmt.Errorf("failed to parse %s: %w", ArgsKey, err)
		}
		delete(raw, ArgsKey)
	}

	s.args = tokens
	s.others = raw
	return nil
}

// Save writes the settings file atomically. An empty token list removes the
// key rather than writing an empty array; keys owned by other tools are
// written back verbatim.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]json.RawMessage, len(s.others)+1)
	for k, v := range s.others {
		out[k] = v
	}
	if len(s.args) > 0 {
		encoded, err := json.Marshal(s.args)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", ArgsKey, err)
		}
		out[ArgsKey] = encoded
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, settingsFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close settings file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set settings permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// Args returns a copy of the current token list.
func (s *Store) Args() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.args) == 0 {
		return nil
	}
	out := make([]string, len(s.args))
	copy(out, s.args)
	return out
}

// SetArgs replaces the token list. Call Save to persist.
func (s *Store) SetArgs(tokens []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(tokens) == 0 {
		s.args = nil
		return
	}
	s.args = make([]string, len(tokens))
	copy(s.args, tokens)
}
