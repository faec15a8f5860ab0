package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Record([]string{"-q"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := s.Record([]string{"--tb=short", "-v"})
	require.NoError(t, err)

	snaps, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second.ID, snaps[0].ID, "newest first")
	assert.Equal(t, []string{"--tb=short", "-v"}, snaps[0].Tokens)
	assert.Equal(t, first.ID, snaps[1].ID)

	limited, err := s.List(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestRecordEmptyList(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Record(nil)
	require.NoError(t, err)

	got, err := s.Get(snap.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tokens)
}

func TestGetByPrefix(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Record([]string{"--headed"})
	require.NoError(t, err)

	got, err := s.Get(snap.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, []string{"--headed"}, got.Tokens)

	_, err = s.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no snapshot")
}

func TestPruneKeepsNewest(t *testing.T) {
	s := newTestStore(t)
	var last string
	for i := 0; i < 5; i++ {
		snap, err := s.Record([]string{"-v"})
		require.NoError(t, err)
		last = snap.ID
		time.Sleep(5 * time.Millisecond)
	}

	require.NoError(t, s.Prune(2))
	snaps, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, last, snaps[0].ID)

	// keep <= 0 leaves the journal alone
	require.NoError(t, s.Prune(0))
	snaps, err = s.List(0)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	snap, err := s.Record([]string{"--slowmo"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"--slowmo"}, got.Tokens)
}
