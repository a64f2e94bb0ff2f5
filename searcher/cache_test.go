package searcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chopsticks/game"
)

func TestCacheStoreLookup(t *testing.T) {
	cache := NewCache()
	pos := game.MustParsePosition("11|12")

	_, ok := cache.Lookup(0, pos)
	require.False(t, ok, "empty cache should miss")

	cache.Store(0, pos, 97)
	score, ok := cache.Lookup(0, pos)
	require.True(t, ok)
	require.Equal(t, 97, score)

	// The two movers' tables are independent.
	_, ok = cache.Lookup(1, pos)
	require.False(t, ok, "mover 1 should not see mover 0's entries")

	// Last write wins.
	cache.Store(0, pos, 42)
	score, _ = cache.Lookup(0, pos)
	require.Equal(t, 42, score)
	require.Equal(t, 1, cache.Len())
}

func TestLoadSnapshot(t *testing.T) {
	t.Run("restores both movers' tables", func(t *testing.T) {
		snapshot := `{"0": {"11|12": 97, "02|11": -3}, "1": {"12|11": -97}}`
		cache, err := LoadSnapshot(strings.NewReader(snapshot))
		require.NoError(t, err)
		require.Equal(t, 3, cache.Len())

		score, ok := cache.Lookup(0, game.MustParsePosition("11|12"))
		require.True(t, ok)
		require.Equal(t, 97, score)

		score, ok = cache.Lookup(1, game.MustParsePosition("12|11"))
		require.True(t, ok)
		require.Equal(t, -97, score)
	})

	t.Run("canonicalizes position keys", func(t *testing.T) {
		cache, err := LoadSnapshot(strings.NewReader(`{"0": {"21|11": 5}}`))
		require.NoError(t, err)
		score, ok := cache.Lookup(0, game.MustParsePosition("12|11"))
		require.True(t, ok)
		require.Equal(t, 5, score)
	})

	t.Run("rejects unknown movers", func(t *testing.T) {
		_, err := LoadSnapshot(strings.NewReader(`{"2": {"11|11": 1}}`))
		require.ErrorIs(t, err, game.ErrInvalidPlayer)
	})

	t.Run("rejects malformed position keys", func(t *testing.T) {
		_, err := LoadSnapshot(strings.NewReader(`{"0": {"9|11": 1}}`))
		require.ErrorIs(t, err, game.ErrInvalidPosition)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := LoadSnapshot(strings.NewReader(`{"0": {`))
		require.Error(t, err)
	})
}

func TestLoadSnapshotFile(t *testing.T) {
	t.Run("missing file yields an empty cache", func(t *testing.T) {
		cache, err := LoadSnapshotFile(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		require.Zero(t, cache.Len())
	})

	t.Run("reads a snapshot from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"0": {"14|00": 99}, "1": {}}`), 0o644))

		cache, err := LoadSnapshotFile(path)
		require.NoError(t, err)
		score, ok := cache.Lookup(0, game.MustParsePosition("14|00"))
		require.True(t, ok)
		require.Equal(t, 99, score)
	})
}
